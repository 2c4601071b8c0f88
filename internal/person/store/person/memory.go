package person

import (
	"context"
	"sort"
	"sync"
	"time"

	"connectsphere/internal/person/models"
	id "connectsphere/pkg/domain"
	"connectsphere/pkg/platform/sentinel"
)

// InMemory is a map-backed person store for tests and local development. It
// keeps flattened row snapshots rather than live aggregates, so callers can
// never mutate stored state through a retained pointer.
type InMemory struct {
	mu      sync.RWMutex
	persons map[id.PersonID]*memoryRecord
}

type memoryRecord struct {
	person    personRow
	addresses []addressRow
	phones    []phoneNumberRow
	emails    []emailAddressRow
	infos     []governmentalInfoRow
	birth     *birthDetailsRow
}

func NewInMemory() *InMemory {
	return &InMemory{persons: make(map[id.PersonID]*memoryRecord)}
}

func (s *InMemory) Create(ctx context.Context, p *models.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.persons[p.ID()]; exists {
		return sentinel.ErrConflict
	}
	s.persons[p.ID()] = record(p)
	return nil
}

func (s *InMemory) Update(ctx context.Context, p *models.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.persons[p.ID()]
	if !ok || existing.person.IsDeleted {
		return sentinel.ErrNotFound
	}
	s.persons[p.ID()] = record(p)
	return nil
}

// SoftDelete flips the deletion flag and stamps the update time. The row and
// its children stay in place.
func (s *InMemory) SoftDelete(ctx context.Context, personID id.PersonID, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.persons[personID]
	if !ok || existing.person.IsDeleted {
		return sentinel.ErrNotFound
	}
	existing.person.IsDeleted = true
	existing.person.UpdatedAt = now
	return nil
}

func (s *InMemory) GetByID(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.persons[personID]
	if !ok || rec.person.IsDeleted {
		return nil, sentinel.ErrNotFound
	}
	return rebuild(rec)
}

func (s *InMemory) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.persons {
		if rec.person.IsDeleted {
			continue
		}
		for _, e := range rec.emails {
			if !e.IsDeleted && e.Email == email {
				return rebuild(rec)
			}
		}
	}
	return nil, sentinel.ErrNotFound
}

// List returns one page of active persons ordered by creation time. Page
// numbers start at 1.
func (s *InMemory) List(ctx context.Context, page, size int) ([]*models.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]*memoryRecord, 0, len(s.persons))
	for _, rec := range s.persons {
		if !rec.person.IsDeleted {
			active = append(active, rec)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if !active[i].person.CreatedAt.Equal(active[j].person.CreatedAt) {
			return active[i].person.CreatedAt.Before(active[j].person.CreatedAt)
		}
		return active[i].person.ID.String() < active[j].person.ID.String()
	})

	start := (page - 1) * size
	if start >= len(active) {
		return nil, nil
	}
	end := start + size
	if end > len(active) {
		end = len(active)
	}

	out := make([]*models.Person, 0, end-start)
	for _, rec := range active[start:end] {
		p, err := rebuild(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Count reports the number of active persons.
func (s *InMemory) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.persons {
		if !rec.person.IsDeleted {
			n++
		}
	}
	return n, nil
}

func record(p *models.Person) *memoryRecord {
	pr, addresses, phones, emails, infos, birth := snapshot(p)
	return &memoryRecord{
		person:    pr,
		addresses: addresses,
		phones:    phones,
		emails:    emails,
		infos:     infos,
		birth:     birth,
	}
}

func rebuild(rec *memoryRecord) (*models.Person, error) {
	return assemble(rec.person, rec.addresses, rec.phones, rec.emails, rec.infos, rec.birth)
}
