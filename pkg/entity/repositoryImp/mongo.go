package repositoryImp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"churnpredict/entities"
	"churnpredict/pkg/entity/repository"
	"churnpredict/pkg/metrics"
)

const backendMongo = "mongo"

type mongoRepo struct{ coll *mongo.Collection }

func NewMongo(db *mongo.Database) repository.EntityRepository {
	return &mongoRepo{coll: db.Collection(repository.CollectionName)}
}

var withoutID = bson.D{{Key: "_id", Value: 0}}

func (r *mongoRepo) List(ctx context.Context) (out []entities.Entity, err error) {
	defer metrics.ObserveStore(backendMongo, "entity_list", time.Now(), &err)

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetProjection(withoutID))
	if err != nil {
		return nil, fmt.Errorf("find entities: %w", err)
	}
	out = []entities.Entity{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}
	return out, nil
}

func (r *mongoRepo) Create(ctx context.Context, e *entities.Entity) (id string, err error) {
	defer metrics.ObserveStore(backendMongo, "entity_create", time.Now(), &err)

	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return "", fmt.Errorf("insert entity: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (r *mongoRepo) FindByName(ctx context.Context, name string) (_ *entities.Entity, err error) {
	defer metrics.ObserveStore(backendMongo, "entity_find", time.Now(), &err)

	var e entities.Entity
	err = r.coll.FindOne(ctx, bson.D{{Key: "EntityName", Value: name}}, options.FindOne().SetProjection(withoutID)).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrEntityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find entity %q: %w", name, err)
	}
	return &e, nil
}

// UpdateChannel sets schedule and keywords on the first channel matching
// channelName inside the entity named entityName.
func (r *mongoRepo) UpdateChannel(ctx context.Context, entityName, channelName, schedule string, keywords []string) (_ repository.UpdateResult, err error) {
	defer metrics.ObserveStore(backendMongo, "entity_update_channel", time.Now(), &err)

	if keywords == nil {
		keywords = []string{}
	}
	filter := bson.D{
		{Key: "EntityName", Value: entityName},
		{Key: "Channels.name", Value: channelName},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "Channels.$.schedule", Value: schedule},
		{Key: "Channels.$.keywords", Value: keywords},
	}}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return repository.ChannelNotFound, fmt.Errorf("update channel %q of %q: %w", channelName, entityName, err)
	}
	switch {
	case res.MatchedCount == 0:
		return repository.ChannelNotFound, nil
	case res.ModifiedCount == 0:
		return repository.ChannelUnchanged, nil
	default:
		return repository.ChannelUpdated, nil
	}
}
