package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"churnpredict/pkg/domain"
)

type DomainCtrl struct{}

func New() *DomainCtrl { return &DomainCtrl{} }

func (h *DomainCtrl) Mapping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"domain_fields": domain.Mapping()})
}
