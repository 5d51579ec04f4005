package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/phrazzld/cards-api/internal/config"
	"github.com/phrazzld/cards-api/internal/generator"
	"github.com/phrazzld/cards-api/internal/platform/memory"
	"github.com/phrazzld/cards-api/internal/platform/metrics"
	"github.com/phrazzld/cards-api/internal/platform/postgres"
	"github.com/phrazzld/cards-api/internal/platform/redis"
	"github.com/phrazzld/cards-api/internal/service"
	"github.com/phrazzld/cards-api/internal/store"
)

// application holds the wired dependencies of a running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	redis       *redis.Client
	cardStore   store.CardStore
	cardService service.CardService
	registry    *prometheus.Registry
	metrics     *metrics.Metrics
}

// newApplication wires storage, generators, the card service and metrics
// according to cfg. Resources opened here are released by cleanup.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	switch cfg.Database.Backend {
	case "postgres":
		db, err := postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		app.db = db
		app.cardStore = postgres.NewPostgresCardStore(db, logger)
		logger.Info("database connection established")
	default:
		app.cardStore = memory.NewCardStore(logger)
		logger.Warn("using in-memory card store; cards are lost on restart")
	}

	var sequence generator.SequenceSource
	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		app.cleanup()
		return nil, err
	}
	if rc != nil {
		app.redis = rc
		sequence = redis.NewPANSequence(rc)
		logger.Info("using redis account sequence")
	} else {
		logger.Warn("using random account sequence; set redis.url for production")
	}

	pans, err := generator.NewPANGenerator(cfg.Card.BIN, cfg.Card.PANLength, sequence)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create PAN generator: %w", err)
	}

	app.cardService, err = service.NewCardService(
		app.cardStore,
		generator.UUIDGenerator{},
		generator.SystemClock{},
		pans,
		logger,
	)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	return app, nil
}

// cleanup closes the database and Redis connections, if open.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("failed to close redis client", slog.String("error", err.Error()))
		}
		app.redis = nil
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", slog.String("error", err.Error()))
		}
		app.db = nil
	}
}
