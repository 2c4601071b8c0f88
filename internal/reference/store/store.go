// Package store persists the reference catalog: countries and the
// classification types. The catalog is read-mostly, so next to the memory and
// PostgreSQL implementations there is a Redis read-through cache that fronts
// either.
package store

import (
	"context"

	"connectsphere/internal/reference/models"
	id "connectsphere/pkg/domain"
)

// Store is the reference catalog port. Lookups return
// sentinel.ErrNotFound when the id or code is unknown.
type Store interface {
	ListCountries(ctx context.Context) ([]*models.Country, error)
	GetCountry(ctx context.Context, countryID id.CountryID) (*models.Country, error)
	GetCountryByCode(ctx context.Context, code string) (*models.Country, error)
	GetCountryByName(ctx context.Context, name string) (*models.Country, error)

	GetPersonType(ctx context.Context, typeID id.PersonTypeID) (*models.PersonType, error)
	GetAddressType(ctx context.Context, typeID id.AddressTypeID) (*models.AddressType, error)
	GetPhoneNumberType(ctx context.Context, typeID id.PhoneNumberTypeID) (*models.PhoneNumberType, error)
	GetEmailAddressType(ctx context.Context, typeID id.EmailAddressTypeID) (*models.EmailAddressType, error)
}
