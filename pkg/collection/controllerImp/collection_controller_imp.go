package controllerImp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"churnpredict/pkg/collection/service"
	"churnpredict/pkg/respond"
)

// maxUpload caps spreadsheet uploads.
const maxUpload = 32 << 20

type CollectionCtrl struct{ svc service.CollectionService }

func New(svc service.CollectionService) *CollectionCtrl { return &CollectionCtrl{svc} }

func (h *CollectionCtrl) List(c echo.Context) error {
	names, err := h.svc.ListCollections(c.Request().Context())
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, "Failed to list collections", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"collections": names})
}

func (h *CollectionCtrl) GetByName(c echo.Context) error {
	docs, err := h.svc.GetCollection(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, "Failed to fetch all data", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": docs})
}

func (h *CollectionCtrl) Columns(c echo.Context) error {
	name := c.Param("name")
	cols, found, err := h.svc.GetColumns(c.Request().Context(), name)
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError,
			fmt.Sprintf("Failed to get columns from collection '%s'", name), err)
	}
	if !found {
		return c.JSON(http.StatusOK, map[string]any{
			"columns": []string{},
			"message": fmt.Sprintf("Collection '%s' is empty or does not exist.", name),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"columns": cols})
}

func (h *CollectionCtrl) Charts(c echo.Context) error {
	series, err := h.svc.ChartSeries(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, "Failed to generate chart data", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "success", "data": series})
}

func (h *CollectionCtrl) LegacyCounts(c echo.Context) error {
	counts, err := h.svc.LegacyDistinctCounts(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, "Failed to generate distinct counts", err)
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *CollectionCtrl) Import(c echo.Context) error {
	name := c.Param("name")
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, maxUpload)

	fh, err := c.FormFile("file")
	if err != nil {
		return respond.Error(c, http.StatusBadRequest, "No spreadsheet file received", err)
	}
	src, err := fh.Open()
	if err != nil {
		return respond.Error(c, http.StatusBadRequest, "No spreadsheet file received", err)
	}
	defer src.Close()

	n, err := h.svc.ImportSpreadsheet(c.Request().Context(), name, src)
	switch {
	case errors.Is(err, service.ErrReservedCollection), errors.Is(err, service.ErrInvalidName):
		return respond.Error(c, http.StatusBadRequest, fmt.Sprintf("Cannot import into collection '%s'", name), err)
	case errors.Is(err, service.ErrBadSpreadsheet):
		return respond.Error(c, http.StatusBadRequest, "Failed to read spreadsheet", err)
	case errors.Is(err, service.ErrNoRows):
		return respond.Error(c, http.StatusBadRequest, "Spreadsheet has no data rows", err)
	case err != nil:
		return respond.Error(c, http.StatusInternalServerError, "Failed to import collection", err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":  fmt.Sprintf("Imported %d documents into '%s'", n, name),
		"inserted": n,
	})
}
