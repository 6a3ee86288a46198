package service

import (
	"context"
	"errors"
	"io"

	"churnpredict/entities"
)

var (
	ErrInvalidName        = errors.New("invalid collection name")
	ErrReservedCollection = errors.New("collection is reserved for entity records")
	ErrNoRows             = errors.New("spreadsheet has no data rows")
	ErrBadSpreadsheet     = errors.New("unreadable spreadsheet")
)

type CollectionService interface {
	ListCollections(ctx context.Context) ([]string, error)
	GetCollection(ctx context.Context, name string) ([]entities.Document, error)
	// GetColumns lists the keys of one document; found is false when the
	// collection is empty or missing.
	GetColumns(ctx context.Context, name string) (columns []string, found bool, err error)
	// DiscoverFieldTypes never fails; store errors are logged and yield an empty map.
	DiscoverFieldTypes(ctx context.Context, name string) map[string]string
	ChartSeries(ctx context.Context, name string) ([]entities.ChartSeries, error)
	LegacyDistinctCounts(ctx context.Context, name string) (map[string][]entities.ValueCount, error)
	ImportSpreadsheet(ctx context.Context, name string, r io.Reader) (int, error)
}
