// Package handler exposes person operations over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"connectsphere/internal/person/service"
	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/platform/httputil"
	"connectsphere/pkg/result"
)

const (
	defaultPageSize = 20
)

// Service defines the person operations the handler depends on.
type Service interface {
	CreatePerson(ctx context.Context, in service.CreatePersonInput) result.Result[service.PersonResponse]
	UpdatePersonName(ctx context.Context, personID id.PersonID, in service.UpdatePersonNameInput) result.Result[service.PersonResponse]
	DeletePerson(ctx context.Context, personID id.PersonID) result.Result[bool]
	AddAddress(ctx context.Context, personID id.PersonID, in service.AddAddressInput) result.Result[service.AddressResponse]
	AddPhoneNumber(ctx context.Context, personID id.PersonID, in service.AddPhoneNumberInput) result.Result[service.PhoneNumberResponse]
	AddEmailAddress(ctx context.Context, personID id.PersonID, in service.AddEmailAddressInput) result.Result[service.EmailAddressResponse]
	AddGovernmentalInfo(ctx context.Context, personID id.PersonID, in service.AddGovernmentalInfoInput) result.Result[service.GovernmentalInfoResponse]
	SetBirthDetails(ctx context.Context, personID id.PersonID, in service.SetBirthDetailsInput) result.Result[service.BirthDetailsResponse]
	GetPersonByID(ctx context.Context, personID id.PersonID) result.Result[service.PersonResponse]
	GetPersonByEmail(ctx context.Context, email string) result.Result[service.PersonResponse]
	ListPersons(ctx context.Context, page, size int) result.Result[service.PersonListResponse]
}

// Handler wires person endpoints to the person service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a person handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts person endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/persons", func(r chi.Router) {
		r.Post("/", h.HandleCreatePerson)
		r.Get("/", h.HandleListPersons)
		r.Get("/by-email", h.HandleGetPersonByEmail)

		r.Route("/{personID}", func(r chi.Router) {
			r.Get("/", h.HandleGetPerson)
			r.Delete("/", h.HandleDeletePerson)
			r.Put("/name", h.HandleUpdateName)
			r.Post("/addresses", h.HandleAddAddress)
			r.Post("/phone-numbers", h.HandleAddPhoneNumber)
			r.Post("/email-addresses", h.HandleAddEmailAddress)
			r.Post("/governmental-infos", h.HandleAddGovernmentalInfo)
			r.Post("/birth-details", h.HandleSetBirthDetails)
		})
	})
}

// personID parses the path parameter. A malformed id never reaches the
// service layer.
func personID(w http.ResponseWriter, r *http.Request) (id.PersonID, bool) {
	parsed, err := id.ParsePersonID(chi.URLParam(r, "personID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "person id must be a valid uuid"))
		return id.PersonID{}, false
	}
	return parsed, true
}

// decode reads and validates the request body.
func decode[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request, dst T) bool {
	if derr := httputil.Decode(r, dst); derr != nil {
		httputil.WriteError(w, derr)
		return false
	}
	if err := dst.Validate(); err != nil {
		httputil.WriteError(w, err)
		return false
	}
	return true
}

// respond writes the result value with the given status, or the mapped error.
func respond[T any](w http.ResponseWriter, res result.Result[T], status int) {
	if !res.IsSuccess() {
		httputil.WriteError(w, res.Err())
		return
	}
	httputil.WriteJSON(w, status, res.Value())
}

// HandleCreatePerson handles POST /persons.
func (h *Handler) HandleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var req CreatePersonRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, h.service.CreatePerson(r.Context(), req.ToInput()), http.StatusCreated)
}

// HandleGetPerson handles GET /persons/{personID}.
func (h *Handler) HandleGetPerson(w http.ResponseWriter, r *http.Request) {
	pid, ok := personID(w, r)
	if !ok {
		return
	}
	respond(w, h.service.GetPersonByID(r.Context(), pid), http.StatusOK)
}

// HandleGetPersonByEmail handles GET /persons/by-email?email=...
func (h *Handler) HandleGetPersonByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "email query parameter is required"))
		return
	}
	respond(w, h.service.GetPersonByEmail(r.Context(), email), http.StatusOK)
}

// HandleListPersons handles GET /persons?page=&size=.
func (h *Handler) HandleListPersons(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page", 1)
	if !ok {
		return
	}
	size, ok := queryInt(w, r, "size", defaultPageSize)
	if !ok {
		return
	}
	respond(w, h.service.ListPersons(r.Context(), page, size), http.StatusOK)
}

// HandleUpdateName handles PUT /persons/{personID}/name.
func (h *Handler) HandleUpdateName(w http.ResponseWriter, r *http.Request) {
	pid, ok := personID(w, r)
	if !ok {
		return
	}
	var req UpdatePersonNameRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, h.service.UpdatePersonName(r.Context(), pid, req.ToInput()), http.StatusOK)
}

// HandleDeletePerson handles DELETE /persons/{personID}.
func (h *Handler) HandleDeletePerson(w http.ResponseWriter, r *http.Request) {
	pid, ok := personID(w, r)
	if !ok {
		return
	}
	res := h.service.DeletePerson(r.Context(), pid)
	if !res.IsSuccess() {
		httputil.WriteError(w, res.Err())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddAddress handles POST /persons/{personID}/addresses.
func (h *Handler) HandleAddAddress(w http.ResponseWriter, r *http.Request) {
	pid, ok := personID(w, r)
	if !ok {
		return
	}
	var req AddAddressRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, h.service.AddAddress(r.Context(), pid, req.ToInput()), http.StatusCreated)
}

// HandleAddPhoneNumber handles POST /persons/{personID}/phone-numbers.
func (h *Handler) HandleAddPhoneNumber(w http.ResponseWriter, r *http.Request) {
	pid, ok := personID(w, r)
	if !ok {
		return
	}
	var req AddPhoneNumberRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, h.service.AddPhoneNumber(r.Context(), pid, req.ToInput()), http.StatusCreated)
}

// HandleAddEmailAddress handles POST /persons/{personID}/email-addresses.
func (h *Handler) HandleAddEmailAddress(w http.ResponseWriter, r *http.Request) {
	pid, ok := personID(w, r)
	if !ok {
		return
	}
	var req AddEmailAddressRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, h.service.AddEmailAddress(r.Context(), pid, req.ToInput()), http.StatusCreated)
}

// HandleAddGovernmentalInfo handles POST /persons/{personID}/governmental-infos.
func (h *Handler) HandleAddGovernmentalInfo(w http.ResponseWriter, r *http.Request) {
	pid, ok := personID(w, r)
	if !ok {
		return
	}
	var req AddGovernmentalInfoRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, h.service.AddGovernmentalInfo(r.Context(), pid, req.ToInput()), http.StatusCreated)
}

// HandleSetBirthDetails handles POST /persons/{personID}/birth-details.
func (h *Handler) HandleSetBirthDetails(w http.ResponseWriter, r *http.Request) {
	pid, ok := personID(w, r)
	if !ok {
		return
	}
	var req SetBirthDetailsRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, h.service.SetBirthDetails(r.Context(), pid, req.ToInput()), http.StatusCreated)
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httputil.WriteError(w, dErrors.Newf(dErrors.CodeInvalidInput, "%s must be an integer", name))
		return 0, false
	}
	return v, true
}
