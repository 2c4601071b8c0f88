package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"connectsphere/internal/reference/models"
	id "connectsphere/pkg/domain"
	"connectsphere/pkg/platform/sentinel"
)

// InMemory is a map-backed reference catalog for tests and local development.
type InMemory struct {
	mu                sync.RWMutex
	countries         map[id.CountryID]*models.Country
	personTypes       map[id.PersonTypeID]*models.PersonType
	addressTypes      map[id.AddressTypeID]*models.AddressType
	phoneNumberTypes  map[id.PhoneNumberTypeID]*models.PhoneNumberType
	emailAddressTypes map[id.EmailAddressTypeID]*models.EmailAddressType
}

func NewInMemory() *InMemory {
	return &InMemory{
		countries:         make(map[id.CountryID]*models.Country),
		personTypes:       make(map[id.PersonTypeID]*models.PersonType),
		addressTypes:      make(map[id.AddressTypeID]*models.AddressType),
		phoneNumberTypes:  make(map[id.PhoneNumberTypeID]*models.PhoneNumberType),
		emailAddressTypes: make(map[id.EmailAddressTypeID]*models.EmailAddressType),
	}
}

// UpsertCountry inserts or replaces a catalog entry. The Upsert methods are
// the seeding surface; reference data has no request-driven write path.
func (s *InMemory) UpsertCountry(_ context.Context, c *models.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries[c.ID()] = c
	return nil
}

func (s *InMemory) UpsertPersonType(_ context.Context, t *models.PersonType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personTypes[t.ID()] = t
	return nil
}

func (s *InMemory) UpsertAddressType(_ context.Context, t *models.AddressType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addressTypes[t.ID()] = t
	return nil
}

func (s *InMemory) UpsertPhoneNumberType(_ context.Context, t *models.PhoneNumberType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phoneNumberTypes[t.ID()] = t
	return nil
}

func (s *InMemory) UpsertEmailAddressType(_ context.Context, t *models.EmailAddressType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emailAddressTypes[t.ID()] = t
	return nil
}

func (s *InMemory) ListCountries(ctx context.Context) ([]*models.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Country, 0, len(s.countries))
	for _, c := range s.countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Details().Name() < out[j].Details().Name()
	})
	return out, nil
}

func (s *InMemory) GetCountry(ctx context.Context, countryID id.CountryID) (*models.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.countries[countryID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return c, nil
}

func (s *InMemory) GetCountryByCode(ctx context.Context, code string) (*models.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.countries {
		if strings.EqualFold(c.Details().CountryCode(), code) {
			return c, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) GetCountryByName(ctx context.Context, name string) (*models.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.countries {
		if strings.EqualFold(c.Details().Name(), name) {
			return c, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) GetPersonType(ctx context.Context, typeID id.PersonTypeID) (*models.PersonType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.personTypes[typeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return t, nil
}

func (s *InMemory) GetAddressType(ctx context.Context, typeID id.AddressTypeID) (*models.AddressType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.addressTypes[typeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return t, nil
}

func (s *InMemory) GetPhoneNumberType(ctx context.Context, typeID id.PhoneNumberTypeID) (*models.PhoneNumberType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.phoneNumberTypes[typeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return t, nil
}

func (s *InMemory) GetEmailAddressType(ctx context.Context, typeID id.EmailAddressTypeID) (*models.EmailAddressType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.emailAddressTypes[typeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return t, nil
}
