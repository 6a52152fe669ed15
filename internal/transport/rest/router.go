package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/ledger-tags/internal/config"
	"github.com/heartmarshall/ledger-tags/internal/metrics"
	"github.com/heartmarshall/ledger-tags/internal/transport/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Tags         *TagHandler
	Transactions *TransactionHandler
	Health       *HealthHandler
}

// NewRouter wires middleware, health checks, metrics and the API routes.
func NewRouter(cfg config.Config, h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORS))
	if cfg.Metrics.Enabled() {
		r.Use(metrics.Middleware())
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
	}

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", h.Tags.List)
			r.Post("/", h.Tags.Upsert)
			r.Delete("/{id}", h.Tags.Delete)
		})

		r.Route("/transactions/{source}", func(r chi.Router) {
			r.Get("/", h.Transactions.List)
			r.Put("/{id}/tags", h.Transactions.UpdateTags)
		})
	})

	return r
}
