package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"connectsphere/internal/person/models"
	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/platform/sentinel"
	"connectsphere/pkg/result"
)

const maxPageSize = 100

// GetPersonByID fetches one active person.
func (s *Service) GetPersonByID(ctx context.Context, personID id.PersonID) result.Result[PersonResponse] {
	return run(ctx, s, "person.get_by_id", func(ctx context.Context) result.Result[PersonResponse] {
		p, derr := s.loadPerson(ctx, personID)
		if derr != nil {
			return result.Failure[PersonResponse](derr)
		}
		return result.Success(personResponse(p))
	})
}

// GetPersonByEmail fetches the active person owning the given email address.
// The address is validated through the value object before the store is hit.
func (s *Service) GetPersonByEmail(ctx context.Context, rawEmail string) result.Result[PersonResponse] {
	return run(ctx, s, "person.get_by_email", func(ctx context.Context) result.Result[PersonResponse] {
		email := models.NewEmail(rawEmail)
		if !email.IsSuccess() {
			return result.Propagate[PersonResponse](email)
		}

		p, err := s.persons.GetByEmail(ctx, email.Value().Value())
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return result.Failure[PersonResponse](dErrors.New(dErrors.CodeNotFound, "person not found"))
			}
			return result.Failure[PersonResponse](dErrors.Wrap(err, dErrors.CodeInternal, "failed to load person"))
		}
		return result.Success(personResponse(p))
	})
}

// ListPersons returns one page of active persons plus the total active count.
// The page fetch and the count run concurrently.
func (s *Service) ListPersons(ctx context.Context, page, size int) result.Result[PersonListResponse] {
	return run(ctx, s, "person.list", func(ctx context.Context) result.Result[PersonListResponse] {
		if page < 1 {
			return result.Failure[PersonListResponse](dErrors.New(dErrors.CodeInvalidInput, "page must be at least 1"))
		}
		if size < 1 || size > maxPageSize {
			return result.Failure[PersonListResponse](dErrors.Newf(dErrors.CodeInvalidInput, "size must be between 1 and %d", maxPageSize))
		}

		var (
			persons []*models.Person
			total   int
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			persons, err = s.persons.List(gctx, page, size)
			return err
		})
		g.Go(func() error {
			var err error
			total, err = s.persons.Count(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return result.Failure[PersonListResponse](dErrors.Wrap(err, dErrors.CodeOperationCancelled, "operation cancelled"))
			}
			return result.Failure[PersonListResponse](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list persons"))
		}

		items := make([]PersonResponse, 0, len(persons))
		for _, p := range persons {
			items = append(items, personResponse(p))
		}
		return result.Success(PersonListResponse{Items: items, Page: page, Size: size, Total: total})
	})
}

// CountPersons returns the number of active persons.
func (s *Service) CountPersons(ctx context.Context) result.Result[int] {
	return run(ctx, s, "person.count", func(ctx context.Context) result.Result[int] {
		total, err := s.persons.Count(ctx)
		if err != nil {
			return result.Failure[int](dErrors.Wrap(err, dErrors.CodeInternal, "failed to count persons"))
		}
		return result.Success(total)
	})
}
