package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"churnpredict/config"
	"churnpredict/database"
	"churnpredict/pkg/jsonutil"
	"churnpredict/pkg/logging"
	"churnpredict/pkg/middleware"
	"churnpredict/router"

	// Entities
	entityCtrlImp "churnpredict/pkg/entity/controllerImp"
	entityRepo "churnpredict/pkg/entity/repository"
	entityRepoImp "churnpredict/pkg/entity/repositoryImp"
	entitySvcImp "churnpredict/pkg/entity/serviceImp"

	// Collections
	collCtrlImp "churnpredict/pkg/collection/controllerImp"
	collRepo "churnpredict/pkg/collection/repository"
	collRepoImp "churnpredict/pkg/collection/repositoryImp"
	collSvcImp "churnpredict/pkg/collection/serviceImp"

	domainCtrlImp "churnpredict/pkg/domain/controllerImp"
	healthCtrlImp "churnpredict/pkg/health/controllerImp"
)

const (
	connectTimeout = 20 * time.Second
	drainTimeout   = 10 * time.Second
)

// store bundles the repositories of one backend with its lifecycle.
type store struct {
	entities    entityRepo.EntityRepository
	collections collRepo.CollectionRepository
	pinger      healthCtrlImp.Pinger
	close       func(context.Context) error
}

func openStore(ctx context.Context, cfg config.AppConfig) (*store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &store{
			entities:    entityRepoImp.NewSQLite(db.DB),
			collections: collRepoImp.NewSQLite(db.DB),
			pinger:      db,
			close:       db.Close,
		}, nil
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		m, err := database.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, err
		}
		return &store{
			entities:    entityRepoImp.NewMongo(m.DB),
			collections: collRepoImp.NewMongo(m.DB),
			pinger:      m,
			close:       m.Close,
		}, nil
	}
	return nil, errors.New("unknown store driver " + cfg.StoreDriver)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonutil.Serializer{}
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Prometheus())
	return e
}

func main() {
	// 1) Config + logging
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.Info().Interface("config", cfg.Redacted()).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2) Store
	st, err := openStore(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("open store")
	}
	logging.Info().Str("driver", cfg.StoreDriver).Msg("store connected")

	// 3) Services + controllers
	eCtrl := entityCtrlImp.New(entitySvcImp.NewEntityService(st.entities))
	cCtrl := collCtrlImp.New(collSvcImp.NewCollectionService(st.collections, cfg.FieldSampleSize))
	dCtrl := domainCtrlImp.New()
	hCtrl := healthCtrlImp.NewHealthCtrl(st.pinger, cfg.StoreDriver)

	// 4) Echo
	e := router.New(newEcho(), eCtrl, cCtrl, dCtrl, hCtrl)
	router.Pages(e, cfg.StaticDir)

	// 5) Start + graceful shutdown
	addr := net.JoinHostPort("0.0.0.0", cfg.Port)
	go func() {
		logging.Info().Str("addr", addr).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("server shutdown")
	}
	if err := st.close(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("close store")
	}
	logging.Info().Msg("server stopped")
}
