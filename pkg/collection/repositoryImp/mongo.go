package repositoryImp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"churnpredict/entities"
	"churnpredict/pkg/charts"
	"churnpredict/pkg/collection/repository"
	"churnpredict/pkg/metrics"
)

const backendMongo = "mongo"

type mongoRepo struct{ db *mongo.Database }

func NewMongo(db *mongo.Database) repository.CollectionRepository { return &mongoRepo{db} }

var withoutID = bson.D{{Key: "_id", Value: 0}}

func (r *mongoRepo) ListNames(ctx context.Context) (names []string, err error) {
	defer metrics.ObserveStore(backendMongo, "collection_list", time.Now(), &err)

	names, err = r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *mongoRepo) FindAll(ctx context.Context, name string) (_ []entities.Document, err error) {
	defer metrics.ObserveStore(backendMongo, "collection_find_all", time.Now(), &err)

	cur, err := r.db.Collection(name).Find(ctx, bson.D{}, options.Find().SetProjection(withoutID))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", name, err)
	}
	var raw []bson.D
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return toDocuments(raw), nil
}

func (r *mongoRepo) FindOne(ctx context.Context, name string) (_ entities.Document, _ bool, err error) {
	defer metrics.ObserveStore(backendMongo, "collection_find_one", time.Now(), &err)

	var raw bson.D
	err = r.db.Collection(name).FindOne(ctx, bson.D{}, options.FindOne().SetProjection(withoutID)).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find one %s: %w", name, err)
	}
	return entities.Document(raw), true, nil
}

// SampleFieldTypes lets the server pick the first $type seen per key over a
// random sample.
func (r *mongoRepo) SampleFieldTypes(ctx context.Context, name string, size int) (_ []charts.FieldType, err error) {
	defer metrics.ObserveStore(backendMongo, "collection_sample_types", time.Now(), &err)

	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: size}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "kv", Value: bson.D{{Key: "$objectToArray", Value: "$$ROOT"}}},
		}}},
		{{Key: "$unwind", Value: "$kv"}},
		{{Key: "$project", Value: bson.D{
			{Key: "field_name", Value: "$kv.k"},
			{Key: "field_type", Value: bson.D{{Key: "$type", Value: "$kv.v"}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$field_name"},
			{Key: "single_type", Value: bson.D{{Key: "$first", Value: "$field_type"}}},
		}}},
	}
	cur, err := r.db.Collection(name).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", name, err)
	}
	out := []charts.FieldType{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode sample %s: %w", name, err)
	}
	return out, nil
}

func (r *mongoRepo) FieldValueCounts(ctx context.Context, name, field string) (_ []entities.ValueCount, err error) {
	defer metrics.ObserveStore(backendMongo, "collection_value_counts", time.Now(), &err)

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "label", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
	cur, err := r.db.Collection(name).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count %s.%s: %w", name, field, err)
	}
	out := []entities.ValueCount{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode counts %s.%s: %w", name, field, err)
	}
	return out, nil
}

func (r *mongoRepo) InsertMany(ctx context.Context, name string, docs []entities.Document) (_ int, err error) {
	defer metrics.ObserveStore(backendMongo, "collection_insert_many", time.Now(), &err)

	if len(docs) == 0 {
		return 0, nil
	}
	batch := make([]any, len(docs))
	for i, d := range docs {
		batch[i] = bson.D(d)
	}
	res, err := r.db.Collection(name).InsertMany(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", name, err)
	}
	return len(res.InsertedIDs), nil
}

func toDocuments(raw []bson.D) []entities.Document {
	out := make([]entities.Document, len(raw))
	for i, d := range raw {
		out[i] = entities.Document(d)
	}
	return out
}
