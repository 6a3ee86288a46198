package serviceImp

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"churnpredict/entities"
	"churnpredict/pkg/charts"
	repo "churnpredict/pkg/collection/repository"
	"churnpredict/pkg/collection/service"
	entityrepo "churnpredict/pkg/entity/repository"
	"churnpredict/pkg/logging"
	"churnpredict/pkg/xlsx"
)

type collectionSvc struct {
	r          repo.CollectionRepository
	sampleSize int
}

func NewCollectionService(r repo.CollectionRepository, sampleSize int) service.CollectionService {
	if sampleSize <= 0 {
		sampleSize = charts.DefaultSampleSize
	}
	return &collectionSvc{r: r, sampleSize: sampleSize}
}

func (s *collectionSvc) ListCollections(ctx context.Context) ([]string, error) {
	return s.r.ListNames(ctx)
}

func (s *collectionSvc) GetCollection(ctx context.Context, name string) ([]entities.Document, error) {
	return s.r.FindAll(ctx, name)
}

func (s *collectionSvc) GetColumns(ctx context.Context, name string) ([]string, bool, error) {
	doc, found, err := s.r.FindOne(ctx, name)
	if err != nil || !found {
		return []string{}, false, err
	}
	return doc.Keys(), true, nil
}

func (s *collectionSvc) DiscoverFieldTypes(ctx context.Context, name string) map[string]string {
	types, err := s.r.SampleFieldTypes(ctx, name, s.sampleSize)
	if err != nil {
		logging.Error().Err(err).Str("collection", name).Msg("field discovery failed")
		return map[string]string{}
	}
	return charts.FilterFieldTypes(types)
}

func (s *collectionSvc) ChartSeries(ctx context.Context, name string) ([]entities.ChartSeries, error) {
	docs, err := s.r.FindAll(ctx, name)
	if err != nil {
		return nil, err
	}
	series := charts.BuildSeries(docs)
	logging.Debug().Str("collection", name).Int("documents", len(docs)).Int("series", len(series)).Msg("chart series built")
	return series, nil
}

// LegacyDistinctCounts counts raw values per discovered field, fields sorted by name.
func (s *collectionSvc) LegacyDistinctCounts(ctx context.Context, name string) (map[string][]entities.ValueCount, error) {
	fields := s.DiscoverFieldTypes(ctx, name)
	out := make(map[string][]entities.ValueCount, len(fields))
	if len(fields) == 0 {
		logging.Info().Str("collection", name).Msg("no fields discovered")
		return out, nil
	}

	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)

	for _, f := range names {
		counts, err := s.r.FieldValueCounts(ctx, name, f)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", f, err)
		}
		for i := range counts {
			counts[i].Label = entities.PlainValue(counts[i].Label)
		}
		out[f] = counts
	}
	return out, nil
}

func (s *collectionSvc) ImportSpreadsheet(ctx context.Context, name string, r io.Reader) (int, error) {
	if err := validName(name); err != nil {
		return 0, err
	}
	docs, err := xlsx.Read(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", service.ErrBadSpreadsheet, err)
	}
	if len(docs) == 0 {
		return 0, service.ErrNoRows
	}
	n, err := s.r.InsertMany(ctx, name, docs)
	if err != nil {
		return 0, err
	}
	logging.Info().Str("collection", name).Int("inserted", n).Msg("spreadsheet imported")
	return n, nil
}

func validName(name string) error {
	switch {
	case name == entityrepo.CollectionName:
		return service.ErrReservedCollection
	case strings.TrimSpace(name) == "",
		strings.ContainsAny(name, "$\x00"),
		strings.HasPrefix(name, "system."):
		return fmt.Errorf("%w: %q", service.ErrInvalidName, name)
	}
	return nil
}
