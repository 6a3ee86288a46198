package repositoryImp

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"gorm.io/gorm"

	"churnpredict/entities"
	"churnpredict/pkg/charts"
	"churnpredict/pkg/collection/repository"
	entityrepo "churnpredict/pkg/entity/repository"
	"churnpredict/pkg/metrics"
)

const (
	backendSQLite = "sqlite"
	insertBatch   = 500
)

// sqliteRepo keeps every collection in one table of BSON blobs so key order
// and value types survive a round trip. Entity records live in their own
// table and are exposed under the entity collection name.
type sqliteRepo struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) repository.CollectionRepository { return &sqliteRepo{db} }

func (r *sqliteRepo) ListNames(ctx context.Context) (_ []string, err error) {
	defer metrics.ObserveStore(backendSQLite, "collection_list", time.Now(), &err)

	names := []string{}
	if err := r.db.WithContext(ctx).Model(&entities.DocumentRecord{}).
		Distinct("collection").Pluck("collection", &names).Error; err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&entities.EntityRecord{}).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("count entities: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	if n > 0 {
		names = append(names, entityrepo.CollectionName)
	}
	sort.Strings(names)
	return names, nil
}

func (r *sqliteRepo) FindAll(ctx context.Context, name string) (_ []entities.Document, err error) {
	defer metrics.ObserveStore(backendSQLite, "collection_find_all", time.Now(), &err)
	return r.load(ctx, name, "rowid", 0)
}

func (r *sqliteRepo) FindOne(ctx context.Context, name string) (_ entities.Document, _ bool, err error) {
	defer metrics.ObserveStore(backendSQLite, "collection_find_one", time.Now(), &err)

	docs, err := r.load(ctx, name, "rowid", 1)
	if err != nil || len(docs) == 0 {
		return nil, false, err
	}
	return docs[0], true, nil
}

func (r *sqliteRepo) SampleFieldTypes(ctx context.Context, name string, size int) (_ []charts.FieldType, err error) {
	defer metrics.ObserveStore(backendSQLite, "collection_sample_types", time.Now(), &err)

	docs, err := r.load(ctx, name, "RANDOM()", size)
	if err != nil {
		return nil, err
	}
	out := charts.FirstSeenTypes(docs)
	if out == nil {
		out = []charts.FieldType{}
	}
	return out, nil
}

func (r *sqliteRepo) FieldValueCounts(ctx context.Context, name, field string) (_ []entities.ValueCount, err error) {
	defer metrics.ObserveStore(backendSQLite, "collection_value_counts", time.Now(), &err)

	docs, err := r.load(ctx, name, "rowid", 0)
	if err != nil {
		return nil, err
	}
	out := []entities.ValueCount{}
	index := map[string]int{}
	for _, d := range docs {
		v, _ := d.Get(field)
		key := groupKey(v)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, entities.ValueCount{Label: v})
		}
		out[i].Count++
	}
	return out, nil
}

func (r *sqliteRepo) InsertMany(ctx context.Context, name string, docs []entities.Document) (_ int, err error) {
	defer metrics.ObserveStore(backendSQLite, "collection_insert_many", time.Now(), &err)

	if len(docs) == 0 {
		return 0, nil
	}
	rows := make([]entities.DocumentRecord, len(docs))
	for i, d := range docs {
		body, err := bson.Marshal(bson.D(d))
		if err != nil {
			return 0, fmt.Errorf("encode document %d: %w", i, err)
		}
		rows[i] = entities.DocumentRecord{Collection: name, Body: body}
	}
	if err := r.db.WithContext(ctx).CreateInBatches(rows, insertBatch).Error; err != nil {
		return 0, fmt.Errorf("insert into %s: %w", name, err)
	}
	return len(rows), nil
}

// load reads up to limit documents (0 means all) of one collection.
func (r *sqliteRepo) load(ctx context.Context, name, order string, limit int) ([]entities.Document, error) {
	if name == entityrepo.CollectionName {
		return r.loadEntities(ctx, order, limit)
	}
	q := r.db.WithContext(ctx).Where("collection = ?", name).Order(order)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []entities.DocumentRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	out := make([]entities.Document, 0, len(rows))
	for _, row := range rows {
		var d bson.D
		if err := bson.Unmarshal(row.Body, &d); err != nil {
			return nil, fmt.Errorf("decode %s/%d: %w", name, row.ID, err)
		}
		out = append(out, entities.Document(d).Without("_id"))
	}
	return out, nil
}

func (r *sqliteRepo) loadEntities(ctx context.Context, order string, limit int) ([]entities.Document, error) {
	q := r.db.WithContext(ctx).Order(order)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []entities.EntityRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read entities: %w", err)
	}
	out := make([]entities.Document, 0, len(rows))
	for _, row := range rows {
		raw, err := bson.Marshal(row.Entity())
		if err != nil {
			return nil, fmt.Errorf("encode entity %s: %w", row.ID, err)
		}
		var d bson.D
		if err := bson.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode entity %s: %w", row.ID, err)
		}
		out = append(out, entities.Document(d))
	}
	return out, nil
}

// groupKey follows $group equality: numbers compare by value across int and
// double types, and a missing field groups with null.
func groupKey(v any) string {
	switch t := charts.TypeName(v); t {
	case "null":
		return t
	case "int", "long", "double":
		return "number:" + charts.Stringify(v)
	default:
		return t + ":" + charts.Stringify(v)
	}
}
