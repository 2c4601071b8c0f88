package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"connectsphere/internal/reference/models"
	id "connectsphere/pkg/domain"
	"connectsphere/pkg/platform/sentinel"
)

type ReferenceMemorySuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemory
}

func TestReferenceMemorySuite(t *testing.T) {
	suite.Run(t, new(ReferenceMemorySuite))
}

func (s *ReferenceMemorySuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemory()
	s.Require().NoError(SeedDefaults(s.ctx, s.store))
}

func (s *ReferenceMemorySuite) TestListCountriesSortedByName() {
	countries, err := s.store.ListCountries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(countries, 3)

	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, c.Details().Name())
	}
	s.Equal([]string{"Germany", "Netherlands", "United States"}, names)
}

func (s *ReferenceMemorySuite) TestGetCountryByID() {
	countryID, err := id.ParseCountryID(CountryNetherlandsID)
	s.Require().NoError(err)

	country, err := s.store.GetCountry(s.ctx, countryID)
	s.Require().NoError(err)
	s.Equal("NL", country.Details().CountryCode())
	s.Equal("Netherlands", country.Details().Name())
}

func (s *ReferenceMemorySuite) TestGetCountryNotFound() {
	countryID, err := id.ParseCountryID("9f9e6679-7425-40de-944b-e07fc1f90ae9")
	s.Require().NoError(err)

	_, err = s.store.GetCountry(s.ctx, countryID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ReferenceMemorySuite) TestGetCountryByCodeIsCaseInsensitive() {
	for _, code := range []string{"DE", "de", "De"} {
		s.Run(code, func() {
			country, err := s.store.GetCountryByCode(s.ctx, code)
			s.Require().NoError(err)
			s.Equal("Germany", country.Details().Name())
		})
	}
}

func (s *ReferenceMemorySuite) TestGetCountryByCodeNotFound() {
	_, err := s.store.GetCountryByCode(s.ctx, "XX")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ReferenceMemorySuite) TestGetCountryByNameIsCaseInsensitive() {
	for _, name := range []string{"United States", "united states", "UNITED STATES"} {
		s.Run(name, func() {
			country, err := s.store.GetCountryByName(s.ctx, name)
			s.Require().NoError(err)
			s.Equal("US", country.Details().CountryCode())
		})
	}
}

func (s *ReferenceMemorySuite) TestGetCountryByNameNotFound() {
	_, err := s.store.GetCountryByName(s.ctx, "Atlantis")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ReferenceMemorySuite) TestUpsertReplacesCountry() {
	replaced := mustCountry(s.T(), CountryGermanyID, "DE", "Deutschland")
	s.Require().NoError(s.store.UpsertCountry(s.ctx, replaced))

	country, err := s.store.GetCountry(s.ctx, replaced.ID())
	s.Require().NoError(err)
	s.Equal("Deutschland", country.Details().Name())

	countries, err := s.store.ListCountries(s.ctx)
	s.Require().NoError(err)
	s.Len(countries, 3)
}

func (s *ReferenceMemorySuite) TestGetPersonType() {
	typeID, err := id.ParsePersonTypeID(PersonTypeCustomerID)
	s.Require().NoError(err)

	personType, err := s.store.GetPersonType(s.ctx, typeID)
	s.Require().NoError(err)
	s.Equal("Customer", personType.Name())
}

func (s *ReferenceMemorySuite) TestGetAddressType() {
	typeID, err := id.ParseAddressTypeID(AddressTypeHomeID)
	s.Require().NoError(err)

	addressType, err := s.store.GetAddressType(s.ctx, typeID)
	s.Require().NoError(err)
	s.Equal("Home", addressType.Name())
}

func (s *ReferenceMemorySuite) TestGetPhoneNumberType() {
	typeID, err := id.ParsePhoneNumberTypeID(PhoneNumberTypeMobileID)
	s.Require().NoError(err)

	phoneType, err := s.store.GetPhoneNumberType(s.ctx, typeID)
	s.Require().NoError(err)
	s.Equal("Mobile", phoneType.Name())
}

func (s *ReferenceMemorySuite) TestGetEmailAddressType() {
	typeID, err := id.ParseEmailAddressTypeID(EmailAddressTypePersonalID)
	s.Require().NoError(err)

	emailType, err := s.store.GetEmailAddressType(s.ctx, typeID)
	s.Require().NoError(err)
	s.Equal("Personal", emailType.Name())
}

func (s *ReferenceMemorySuite) TestTypeLookupsNotFound() {
	unknown := "9f9e6679-7425-40de-944b-e07fc1f90ae9"

	personTypeID, err := id.ParsePersonTypeID(unknown)
	s.Require().NoError(err)
	_, err = s.store.GetPersonType(s.ctx, personTypeID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	addressTypeID, err := id.ParseAddressTypeID(unknown)
	s.Require().NoError(err)
	_, err = s.store.GetAddressType(s.ctx, addressTypeID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	phoneTypeID, err := id.ParsePhoneNumberTypeID(unknown)
	s.Require().NoError(err)
	_, err = s.store.GetPhoneNumberType(s.ctx, phoneTypeID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	emailTypeID, err := id.ParseEmailAddressTypeID(unknown)
	s.Require().NoError(err)
	_, err = s.store.GetEmailAddressType(s.ctx, emailTypeID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ReferenceMemorySuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.store.ListCountries(ctx)
	s.ErrorIs(err, context.Canceled)
}

func mustCountry(t *testing.T, rawID, code, name string) *models.Country {
	t.Helper()
	countryID, err := id.ParseCountryID(rawID)
	require.NoError(t, err)
	details := models.NewCountryDetails(code, name, nil, nil, nil, nil)
	require.True(t, details.IsSuccess())
	country := models.NewCountry(countryID, details.Value())
	require.True(t, country.IsSuccess())
	return country.Value()
}
