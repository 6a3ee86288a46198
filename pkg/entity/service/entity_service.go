package service

import (
	"context"
	"errors"

	"churnpredict/entities"
	"churnpredict/pkg/entity/repository"
)

var (
	// ErrNoData means the request carried no usable body.
	ErrNoData = errors.New("no data received")
	// ErrMissingFields wraps a validation failure on a required key.
	ErrMissingFields = errors.New("missing required fields")
)

// SaveEntityRequest uses pointers so an absent key is told apart from an
// empty value; only absence is rejected.
type SaveEntityRequest struct {
	EntityName *string             `json:"EntityName" validate:"required"`
	Purpose    *string             `json:"Purpose" validate:"required"`
	Domain     *string             `json:"Domain" validate:"required"`
	Channels   *[]entities.Channel `json:"Channels" validate:"required"`
}

// Empty reports a body with none of the known keys.
func (r *SaveEntityRequest) Empty() bool {
	return r.EntityName == nil && r.Purpose == nil && r.Domain == nil && r.Channels == nil
}

func (r *SaveEntityRequest) Entity() *entities.Entity {
	e := &entities.Entity{Channels: []entities.Channel{}}
	if r.EntityName != nil {
		e.EntityName = *r.EntityName
	}
	if r.Purpose != nil {
		e.Purpose = *r.Purpose
	}
	if r.Domain != nil {
		e.Domain = *r.Domain
	}
	if r.Channels != nil && *r.Channels != nil {
		e.Channels = *r.Channels
	}
	return e
}

// UpdateChannelRequest addresses one channel by entity and channel name.
// Names must be non-empty; schedule and keywords only need to be present.
type UpdateChannelRequest struct {
	EntityName  string    `json:"EntityName" validate:"required"`
	ChannelName string    `json:"ChannelName" validate:"required"`
	Schedule    *string   `json:"Schedule" validate:"required"`
	Keywords    *[]string `json:"Keywords" validate:"required"`
}

type EntityService interface {
	ListEntities(ctx context.Context) ([]entities.Entity, error)
	SaveEntity(ctx context.Context, req *SaveEntityRequest) (string, error)
	GetEntity(ctx context.Context, name string) (*entities.Entity, error)
	UpdateChannel(ctx context.Context, req *UpdateChannelRequest) (repository.UpdateResult, error)
}
