package controllerImp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"churnpredict/pkg/entity/repository"
	"churnpredict/pkg/entity/service"
	"churnpredict/pkg/respond"
)

type EntityCtrl struct{ svc service.EntityService }

func New(svc service.EntityService) *EntityCtrl { return &EntityCtrl{svc} }

func (h *EntityCtrl) List(c echo.Context) error {
	list, err := h.svc.ListEntities(c.Request().Context())
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, "Failed to fetch all entities", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"entities": list})
}

func (h *EntityCtrl) Save(c echo.Context) error {
	var req service.SaveEntityRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, http.StatusBadRequest, "No JSON data received", err)
	}
	id, err := h.svc.SaveEntity(c.Request().Context(), &req)
	switch {
	case errors.Is(err, service.ErrNoData):
		return respond.Error(c, http.StatusBadRequest, "No JSON data received", err)
	case errors.Is(err, service.ErrMissingFields):
		return respond.Error(c, http.StatusBadRequest, "Missing required fields", err)
	case err != nil:
		return respond.Error(c, http.StatusInternalServerError, "Failed to save entity", err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message":   "Entity saved successfully!",
		"entity_id": id,
	})
}

func (h *EntityCtrl) GetByName(c echo.Context) error {
	name := c.Param("name")
	e, err := h.svc.GetEntity(c.Request().Context(), name)
	if errors.Is(err, repository.ErrEntityNotFound) {
		return respond.Message(c, http.StatusNotFound, fmt.Sprintf("Entity with name '%s' not found", name))
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, "Failed to fetch entity", err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EntityCtrl) UpdateChannel(c echo.Context) error {
	var req service.UpdateChannelRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Missing required fields for update", err)
	}
	res, err := h.svc.UpdateChannel(c.Request().Context(), &req)
	if errors.Is(err, service.ErrMissingFields) {
		return respond.Error(c, http.StatusBadRequest, "Missing required fields for update", err)
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, "Failed to update channel configuration", err)
	}
	switch res {
	case repository.ChannelNotFound:
		return respond.Message(c, http.StatusNotFound,
			fmt.Sprintf("Entity '%s' or channel '%s' not found", req.EntityName, req.ChannelName))
	case repository.ChannelUnchanged:
		return respond.Message(c, http.StatusOK, "No changes made, configuration might be the same")
	default:
		return respond.Message(c, http.StatusOK, "Channel configuration updated successfully")
	}
}
