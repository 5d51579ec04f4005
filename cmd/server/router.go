package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phrazzld/cards-api/internal/api"
	apiMiddleware "github.com/phrazzld/cards-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	cardHandler := api.NewCardHandler(app.cardService, app.metrics, app.logger)
	statusHandler := api.NewStatusHandler(app.logger, app.healthChecks()...)

	r.Post("/cards", cardHandler.CreateCard)
	r.Get("/status", statusHandler.Status)
	r.Get("/ready", statusHandler.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}

// healthChecks returns a readiness check for each external dependency in use.
func (app *application) healthChecks() []api.HealthCheck {
	var checks []api.HealthCheck
	if app.db != nil {
		db := app.db
		checks = append(checks, api.HealthCheck{
			Name:  "database",
			Check: func(ctx context.Context) error { return db.PingContext(ctx) },
		})
	}
	if app.redis != nil {
		checks = append(checks, api.HealthCheck{Name: "redis", Check: app.redis.Health})
	}
	return checks
}
