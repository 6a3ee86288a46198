package repositoryImp

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"churnpredict/entities"
	"churnpredict/pkg/entity/repository"
	"churnpredict/pkg/metrics"
)

const backendSQLite = "sqlite"

type sqliteRepo struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) repository.EntityRepository { return &sqliteRepo{db} }

func (r *sqliteRepo) List(ctx context.Context) (_ []entities.Entity, err error) {
	defer metrics.ObserveStore(backendSQLite, "entity_list", time.Now(), &err)

	var rows []entities.EntityRecord
	if err := r.db.WithContext(ctx).Order("rowid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	out := make([]entities.Entity, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out, nil
}

func (r *sqliteRepo) Create(ctx context.Context, e *entities.Entity) (_ string, err error) {
	defer metrics.ObserveStore(backendSQLite, "entity_create", time.Now(), &err)

	row := entities.EntityRecord{
		ID:         uuid.NewString(),
		EntityName: e.EntityName,
		Purpose:    e.Purpose,
		Domain:     e.Domain,
		Channels:   e.Channels,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert entity: %w", err)
	}
	return row.ID, nil
}

func (r *sqliteRepo) FindByName(ctx context.Context, name string) (_ *entities.Entity, err error) {
	defer metrics.ObserveStore(backendSQLite, "entity_find", time.Now(), &err)

	row, err := firstByName(r.db.WithContext(ctx), name)
	if err != nil {
		return nil, err
	}
	e := row.Entity()
	return &e, nil
}

func (r *sqliteRepo) UpdateChannel(ctx context.Context, entityName, channelName, schedule string, keywords []string) (res repository.UpdateResult, err error) {
	defer metrics.ObserveStore(backendSQLite, "entity_update_channel", time.Now(), &err)

	if keywords == nil {
		keywords = []string{}
	}
	res = repository.ChannelNotFound
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := firstByName(tx, entityName)
		if errors.Is(err, repository.ErrEntityNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		e := row.Entity()
		i := e.ChannelIndex(channelName)
		if i < 0 {
			return nil
		}
		ch := &row.Channels[i]
		if ch.Schedule == schedule && slices.Equal(ch.Keywords, keywords) {
			res = repository.ChannelUnchanged
			return nil
		}
		ch.Schedule = schedule
		ch.Keywords = keywords
		if err := tx.Save(row).Error; err != nil {
			return fmt.Errorf("update channel %q of %q: %w", channelName, entityName, err)
		}
		res = repository.ChannelUpdated
		return nil
	})
	if err != nil {
		return repository.ChannelNotFound, err
	}
	return res, nil
}

// firstByName returns the oldest record with the given name; names are not
// enforced unique at write time.
func firstByName(db *gorm.DB, name string) (*entities.EntityRecord, error) {
	var row entities.EntityRecord
	err := db.Where("entity_name = ?", name).Order("rowid").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrEntityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find entity %q: %w", name, err)
	}
	return &row, nil
}
