// Package httpapi composes the public HTTP surface: catalog and person
// routes, health and metrics endpoints, and the shared middleware chain.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"connectsphere/internal/platform/middleware"
	"connectsphere/pkg/platform/httputil"
	"connectsphere/pkg/platform/middleware/metadata"
	"connectsphere/pkg/platform/middleware/requesttime"
)

// Registrar mounts a handler's routes on a router.
type Registrar interface {
	Register(r chi.Router)
}

// Deps carries everything the router composes.
type Deps struct {
	Logger    *slog.Logger
	Persons   Registrar
	Reference Registrar
	Validator middleware.JWTValidator

	// Health reports readiness of backing resources. Nil means always ready.
	Health func(ctx context.Context) error
}

// NewRouter builds the application router. Catalog routes are public;
// person routes carry personal data and sit behind bearer authentication.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Correlation)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealth(deps.Health))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)

		if deps.Reference != nil {
			deps.Reference.Register(r)
		}
		if deps.Persons != nil {
			r.Group(func(r chi.Router) {
				if deps.Validator != nil {
					r.Use(middleware.RequireAuth(deps.Validator, logger))
				}
				deps.Persons.Register(r)
			})
		}
	})

	return r
}

func handleHealth(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unavailable",
				})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
