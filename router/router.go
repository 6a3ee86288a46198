package router

import (
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	collection "churnpredict/pkg/collection/controller"
	domain "churnpredict/pkg/domain/controller"
	entity "churnpredict/pkg/entity/controller"
	health "churnpredict/pkg/health/controller"
	"churnpredict/pkg/logging"
)

func New(
	e *echo.Echo,
	entityCtrl entity.EntityController,
	collCtrl collection.CollectionController,
	domainCtrl domain.DomainController,
	healthCtrl health.HealthController,
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Entities
	e.GET("/get_all_entities", entityCtrl.List)
	e.POST("/save_entity", entityCtrl.Save)
	e.GET("/get_entity_by_name/:name", entityCtrl.GetByName)
	e.POST("/update_channel_config", entityCtrl.UpdateChannel)

	// Collections
	e.GET("/list_collections", collCtrl.List)
	e.GET("/get_collection_by_name/:name", collCtrl.GetByName)
	e.GET("/get_collection_columns/:name", collCtrl.Columns)
	e.GET("/get_distinct_counts_for_charts_dynamic/:name", collCtrl.Charts)
	e.GET("/get_distinct_counts_for_charts_dynamic_old/:name", collCtrl.LegacyCounts)
	e.POST("/import_collection/:name", collCtrl.Import)

	e.GET("/get_domain_fields_mapping", domainCtrl.Mapping)
	return e
}

// Pages serves the dashboard from dir. Missing files are only reported.
func Pages(e *echo.Echo, dir string) {
	e.Static("/static", dir)
	pages := map[string]string{
		"/":             "index.html",
		"/ChurnPredict": "ChurnPredict.html",
	}
	for route, file := range pages {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err != nil {
			logging.Warn().Err(err).Str("route", route).Msg("dashboard page not found")
		}
		e.File(route, path)
	}
}
