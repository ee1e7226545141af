// Package httptransport assembles the service's HTTP router.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskhub/internal/platform/metrics"
	"taskhub/internal/platform/middleware"
	"taskhub/pkg/platform/httputil"
	"taskhub/pkg/platform/middleware/admin"
	"taskhub/pkg/platform/middleware/requestmeta"
)

// Registrar adds a group of routes to a router.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Config carries everything the router mounts.
type Config struct {
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	AdminToken string

	// API routes are served to every caller.
	API []Registrar
	// Operator routes additionally require the admin token.
	Operator []Registrar

	HealthChecks map[string]HealthCheck
}

// NewRouter wires middleware, API routes and operational endpoints.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(requestmeta.Middleware)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Get("/health", healthHandler(cfg.HealthChecks))
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, reg := range cfg.API {
		reg.Register(r)
	}
	r.Group(func(op chi.Router) {
		op.Use(admin.RequireAdminToken(cfg.AdminToken, cfg.Logger))
		for _, reg := range cfg.Operator {
			reg.Register(op)
		}
	})
	return r
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := map[string]any{"status": "ok"}
		failures := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				failures[name] = err.Error()
			}
		}
		if len(failures) > 0 {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["checks"] = failures
		}
		httputil.WriteJSON(w, status, body)
	}
}
