// Package handler exposes the reference catalog over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"connectsphere/internal/reference/service"
	"connectsphere/pkg/platform/httputil"
	"connectsphere/pkg/result"
)

// Service defines the catalog queries the handler depends on.
type Service interface {
	ListCountries(ctx context.Context) result.Result[[]service.CountryResponse]
	GetCountry(ctx context.Context, rawID string) result.Result[service.CountryResponse]
	GetCountryByCode(ctx context.Context, code string) result.Result[service.CountryResponse]
	GetCountryByName(ctx context.Context, name string) result.Result[service.CountryResponse]
}

// Handler wires catalog endpoints to the reference service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts catalog endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/countries", func(r chi.Router) {
		r.Get("/", h.HandleListCountries)
		r.Get("/{countryID}", h.HandleGetCountry)
		r.Get("/code/{code}", h.HandleGetCountryByCode)
		r.Get("/name/{name}", h.HandleGetCountryByName)
	})
}

// HandleListCountries handles GET /countries.
func (h *Handler) HandleListCountries(w http.ResponseWriter, r *http.Request) {
	res := h.service.ListCountries(r.Context())
	if !res.IsSuccess() {
		httputil.WriteError(w, res.Err())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res.Value())
}

// HandleGetCountry handles GET /countries/{countryID}.
func (h *Handler) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	res := h.service.GetCountry(r.Context(), chi.URLParam(r, "countryID"))
	if !res.IsSuccess() {
		httputil.WriteError(w, res.Err())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res.Value())
}

// HandleGetCountryByCode handles GET /countries/code/{code}.
func (h *Handler) HandleGetCountryByCode(w http.ResponseWriter, r *http.Request) {
	res := h.service.GetCountryByCode(r.Context(), chi.URLParam(r, "code"))
	if !res.IsSuccess() {
		httputil.WriteError(w, res.Err())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res.Value())
}

// HandleGetCountryByName handles GET /countries/name/{name}.
func (h *Handler) HandleGetCountryByName(w http.ResponseWriter, r *http.Request) {
	res := h.service.GetCountryByName(r.Context(), chi.URLParam(r, "name"))
	if !res.IsSuccess() {
		httputil.WriteError(w, res.Err())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res.Value())
}
