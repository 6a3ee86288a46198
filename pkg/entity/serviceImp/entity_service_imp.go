package serviceImp

import (
	"context"
	"fmt"

	"churnpredict/entities"
	repo "churnpredict/pkg/entity/repository"
	"churnpredict/pkg/entity/service"
	"churnpredict/pkg/logging"
	"churnpredict/pkg/validation"
)

type entitySvc struct{ r repo.EntityRepository }

func NewEntityService(r repo.EntityRepository) service.EntityService { return &entitySvc{r} }

func (s *entitySvc) ListEntities(ctx context.Context) ([]entities.Entity, error) {
	return s.r.List(ctx)
}

func (s *entitySvc) SaveEntity(ctx context.Context, req *service.SaveEntityRequest) (string, error) {
	if req == nil || req.Empty() {
		return "", service.ErrNoData
	}
	if err := validation.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %w", service.ErrMissingFields, err)
	}
	e := req.Entity()
	id, err := s.r.Create(ctx, e)
	if err != nil {
		return "", err
	}
	logging.Info().Str("entity", e.EntityName).Str("entity_id", id).Int("channels", len(e.Channels)).Msg("entity saved")
	return id, nil
}

func (s *entitySvc) GetEntity(ctx context.Context, name string) (*entities.Entity, error) {
	return s.r.FindByName(ctx, name)
}

func (s *entitySvc) UpdateChannel(ctx context.Context, req *service.UpdateChannelRequest) (repo.UpdateResult, error) {
	if req == nil {
		return repo.ChannelNotFound, service.ErrMissingFields
	}
	if err := validation.Struct(req); err != nil {
		return repo.ChannelNotFound, fmt.Errorf("%w: %w", service.ErrMissingFields, err)
	}
	res, err := s.r.UpdateChannel(ctx, req.EntityName, req.ChannelName, *req.Schedule, *req.Keywords)
	if err != nil {
		return res, err
	}
	logging.Info().
		Str("entity", req.EntityName).
		Str("channel", req.ChannelName).
		Stringer("result", res).
		Msg("channel config update")
	return res, nil
}
