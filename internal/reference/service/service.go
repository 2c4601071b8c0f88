// Package service exposes read operations over the reference catalog.
package service

import (
	"context"
	"errors"
	"log/slog"

	"connectsphere/internal/reference/models"
	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/platform/sentinel"
	"connectsphere/pkg/requestcontext"
	"connectsphere/pkg/result"
)

// Store is the catalog port the service reads from.
type Store interface {
	ListCountries(ctx context.Context) ([]*models.Country, error)
	GetCountry(ctx context.Context, countryID id.CountryID) (*models.Country, error)
	GetCountryByCode(ctx context.Context, code string) (*models.Country, error)
	GetCountryByName(ctx context.Context, name string) (*models.Country, error)
}

// Service answers catalog queries. The catalog is seeded at boot and
// read-only at runtime, so there are no commands here.
type Service struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// ListCountries returns every country, sorted by name.
func (s *Service) ListCountries(ctx context.Context) result.Result[[]CountryResponse] {
	if err := ctx.Err(); err != nil {
		return fail[[]CountryResponse](ctx, dErrors.Wrap(err, dErrors.CodeOperationCancelled, "operation cancelled"))
	}
	countries, err := s.store.ListCountries(ctx)
	if err != nil {
		return fail[[]CountryResponse](ctx, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list countries"))
	}
	items := make([]CountryResponse, 0, len(countries))
	for _, c := range countries {
		items = append(items, countryResponse(c))
	}
	return result.Success(items)
}

// GetCountry fetches one country by id.
func (s *Service) GetCountry(ctx context.Context, rawID string) result.Result[CountryResponse] {
	if err := ctx.Err(); err != nil {
		return fail[CountryResponse](ctx, dErrors.Wrap(err, dErrors.CodeOperationCancelled, "operation cancelled"))
	}
	countryID, err := id.ParseCountryID(rawID)
	if err != nil {
		return fail[CountryResponse](ctx, dErrors.New(dErrors.CodeInvalidInput, "country id must be a valid uuid"))
	}
	c, err := s.store.GetCountry(ctx, countryID)
	if err != nil {
		return fail[CountryResponse](ctx, lookupError(err, "country not found"))
	}
	return result.Success(countryResponse(c))
}

// GetCountryByCode fetches one country by its ISO code, case-insensitively.
func (s *Service) GetCountryByCode(ctx context.Context, code string) result.Result[CountryResponse] {
	if err := ctx.Err(); err != nil {
		return fail[CountryResponse](ctx, dErrors.Wrap(err, dErrors.CodeOperationCancelled, "operation cancelled"))
	}
	if code == "" {
		return fail[CountryResponse](ctx, dErrors.New(dErrors.CodeInvalidInput, "country code is required"))
	}
	c, err := s.store.GetCountryByCode(ctx, code)
	if err != nil {
		return fail[CountryResponse](ctx, lookupError(err, "country not found"))
	}
	return result.Success(countryResponse(c))
}

// GetCountryByName fetches one country by its name, case-insensitively.
func (s *Service) GetCountryByName(ctx context.Context, name string) result.Result[CountryResponse] {
	if err := ctx.Err(); err != nil {
		return fail[CountryResponse](ctx, dErrors.Wrap(err, dErrors.CodeOperationCancelled, "operation cancelled"))
	}
	if name == "" {
		return fail[CountryResponse](ctx, dErrors.New(dErrors.CodeInvalidInput, "country name is required"))
	}
	c, err := s.store.GetCountryByName(ctx, name)
	if err != nil {
		return fail[CountryResponse](ctx, lookupError(err, "country not found"))
	}
	return result.Success(countryResponse(c))
}

func fail[T any](ctx context.Context, err *dErrors.Error) result.Result[T] {
	return result.Failure[T](err).Tagged(requestcontext.CorrelationID(ctx))
}

func lookupError(err error, notFoundMsg string) *dErrors.Error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, notFoundMsg)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeOperationCancelled, "operation cancelled")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "catalog lookup failed")
}
