// Package router assembles the HTTP route table.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/coachhub/catalog/internal/handler"
	"github.com/coachhub/catalog/internal/middleware"
)

// Config carries the handlers and settings the router wires together.
type Config struct {
	CreditPackages *handler.CreditPackageHandler
	Skills         *handler.SkillHandler
	Health         *handler.HealthHandler
	Metrics        *handler.MetricsHandler

	Logger             *slog.Logger
	MaxRequestBodySize int64
	IsDevelopment      bool
}

// New builds the chi router.
//
// Preflight is answered by middleware before matching, so OPTIONS succeeds on
// any path. Unmatched paths and method mismatches share the 404 envelope.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment}))
	r.Use(middleware.CORS)
	if cfg.MaxRequestBodySize > 0 {
		r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
	}

	if cfg.Health != nil {
		r.Get("/healthz", cfg.Health.Healthz)
		r.Get("/readyz", cfg.Health.Readyz)
	}
	if cfg.Metrics != nil {
		r.Get("/metrics", cfg.Metrics.Metrics)
	}

	r.Get("/api/credit-package", cfg.CreditPackages.List)
	r.Post("/api/credit-package", cfg.CreditPackages.Create)
	r.Delete("/api/credit-package/*", cfg.CreditPackages.Delete)

	r.Get("/api/coaches/skill", cfg.Skills.List)
	r.Post("/api/coaches/skill", cfg.Skills.Create)
	r.Delete("/api/coaches/skill/*", cfg.Skills.Delete)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)

	return r
}
