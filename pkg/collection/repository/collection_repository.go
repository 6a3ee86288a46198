package repository

import (
	"context"

	"churnpredict/entities"
	"churnpredict/pkg/charts"
)

// CollectionRepository reads schema-less collections by name. Documents are
// returned without the store's internal identifier.
type CollectionRepository interface {
	ListNames(ctx context.Context) ([]string, error)
	FindAll(ctx context.Context, name string) ([]entities.Document, error)
	// FindOne returns any single document; found is false for an empty or
	// unknown collection.
	FindOne(ctx context.Context, name string) (doc entities.Document, found bool, err error)
	SampleFieldTypes(ctx context.Context, name string, size int) ([]charts.FieldType, error)
	// FieldValueCounts groups by one field; documents missing it count under a nil label.
	FieldValueCounts(ctx context.Context, name, field string) ([]entities.ValueCount, error)
	InsertMany(ctx context.Context, name string, docs []entities.Document) (int, error)
}
