// Package service orchestrates person commands and queries.
//
// Every operation follows the same sequence: check cancellation, build value
// objects, load or construct the aggregate, apply the mutation, persist, then
// drain and dispatch the pending domain events. Failures at any step return
// immediately with the original error list, each error stamped with the
// request's correlation id. Event dispatch is best-effort and sequential; a
// dispatch failure is logged but never rolls back the persisted state.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"

	"connectsphere/internal/person/metrics"
	"connectsphere/internal/person/models"
	refmodels "connectsphere/internal/reference/models"
	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/platform/sentinel"
	"connectsphere/pkg/requestcontext"
	"connectsphere/pkg/result"
)

var tracer = otel.Tracer("connectsphere/internal/person/service")

// PersonStore is the aggregate persistence port. Implementations return
// sentinel errors for store-level facts; the service translates them into
// coded errors. Reads only surface active (not soft-deleted) persons.
type PersonStore interface {
	Create(ctx context.Context, p *models.Person) error
	Update(ctx context.Context, p *models.Person) error
	SoftDelete(ctx context.Context, personID id.PersonID, now time.Time) error
	GetByID(ctx context.Context, personID id.PersonID) (*models.Person, error)
	GetByEmail(ctx context.Context, email string) (*models.Person, error)
	List(ctx context.Context, page, size int) ([]*models.Person, error)
	Count(ctx context.Context) (int, error)
}

// ReferenceStore resolves catalog identifiers named by incoming commands.
type ReferenceStore interface {
	GetCountry(ctx context.Context, countryID id.CountryID) (*refmodels.Country, error)
	GetAddressType(ctx context.Context, typeID id.AddressTypeID) (*refmodels.AddressType, error)
	GetPhoneNumberType(ctx context.Context, typeID id.PhoneNumberTypeID) (*refmodels.PhoneNumberType, error)
	GetEmailAddressType(ctx context.Context, typeID id.EmailAddressTypeID) (*refmodels.EmailAddressType, error)
}

// EventDispatcher publishes domain events. Fire-and-forget, at-most-once:
// the service never retries a failed dispatch.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event models.Event) error
}

// Service orchestrates person management.
type Service struct {
	persons    PersonStore
	refs       ReferenceStore
	dispatcher EventDispatcher
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(persons PersonStore, refs ReferenceStore, dispatcher EventDispatcher, opts ...Option) *Service {
	s := &Service{persons: persons, refs: refs, dispatcher: dispatcher, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run wraps one service operation: it opens a span, checks cancellation up
// front, recovers a panicking port exactly once and converts it to an
// internal failure, stamps every failure with the request correlation id and
// records the operation metric.
func run[T any](ctx context.Context, s *Service, operation string, fn func(ctx context.Context) result.Result[T]) (res result.Result[T]) {
	ctx, span := tracer.Start(ctx, operation)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = result.Failure[T](dErrors.New(dErrors.CodeInternal, "unexpected fault").WithDetail(fmt.Sprintf("%s: %v", operation, r)))
			s.logger.ErrorContext(ctx, "recovered panic in service operation",
				"operation", operation, "panic", fmt.Sprint(r))
		}
		res = res.Tagged(requestcontext.CorrelationID(ctx))
		if !res.IsSuccess() {
			span.SetStatus(otelcodes.Error, string(dErrors.CodeOf(res.Err())))
		}
		span.End()
		if s.metrics != nil {
			s.metrics.ObserveOperation(operation, start, res.IsSuccess())
		}
	}()

	if err := ctx.Err(); err != nil {
		return result.Failure[T](dErrors.Wrap(err, dErrors.CodeOperationCancelled, "operation cancelled"))
	}
	return fn(ctx)
}

// dispatchEvents drains the aggregate's pending events and hands each to the
// dispatcher in order. Failures are logged and counted, never retried.
func (s *Service) dispatchEvents(ctx context.Context, p *models.Person) {
	for _, event := range p.TakeDomainEvents() {
		if err := s.dispatcher.Dispatch(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "domain event dispatch failed",
				"event", event.EventName(), "event_id", event.EventID(), "error", err)
			if s.metrics != nil {
				s.metrics.DispatchFailures.Inc()
			}
			continue
		}
		if s.metrics != nil {
			s.metrics.EventsDispatched.Inc()
		}
	}
}

// loadPerson fetches the aggregate or translates the store's sentinel into a
// coded not-found failure.
func (s *Service) loadPerson(ctx context.Context, personID id.PersonID) (*models.Person, *dErrors.Error) {
	p, err := s.persons.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "person not found")
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, dErrors.Wrap(err, dErrors.CodeOperationCancelled, "operation cancelled")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load person")
	}
	return p, nil
}

// persistUpdate writes the mutated aggregate back through the store.
func (s *Service) persistUpdate(ctx context.Context, p *models.Person) *dErrors.Error {
	if err := s.persons.Update(ctx, p); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "person not found")
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return dErrors.Wrap(err, dErrors.CodeOperationCancelled, "operation cancelled")
		}
		return dErrors.Wrap(err, dErrors.CodeResourceUpdateFailed, "failed to update person")
	}
	return nil
}

func (s *Service) resolveCountry(ctx context.Context, raw string) (id.CountryID, *dErrors.Error) {
	countryID, err := id.ParseCountryID(raw)
	if err != nil {
		return id.CountryID{}, dErrors.New(dErrors.CodeInvalidInput, "country id must be a valid uuid")
	}
	if _, err := s.refs.GetCountry(ctx, countryID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return id.CountryID{}, dErrors.New(dErrors.CodeNotFound, "country not found")
		}
		return id.CountryID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve country")
	}
	return countryID, nil
}
