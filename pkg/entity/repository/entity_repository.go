package repository

import (
	"context"
	"errors"

	"churnpredict/entities"
)

// CollectionName is where entity records live in the document store.
const CollectionName = "Entities"

var ErrEntityNotFound = errors.New("entity not found")

// UpdateResult tells a missing target apart from a write that changed nothing.
type UpdateResult int

const (
	ChannelNotFound UpdateResult = iota
	ChannelUnchanged
	ChannelUpdated
)

func (r UpdateResult) String() string {
	switch r {
	case ChannelUnchanged:
		return "unchanged"
	case ChannelUpdated:
		return "updated"
	default:
		return "not_found"
	}
}

type EntityRepository interface {
	List(ctx context.Context) ([]entities.Entity, error)
	Create(ctx context.Context, e *entities.Entity) (string, error)
	FindByName(ctx context.Context, name string) (*entities.Entity, error)
	UpdateChannel(ctx context.Context, entityName, channelName, schedule string, keywords []string) (UpdateResult, error)
}
