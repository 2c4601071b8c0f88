package store

import (
	"context"
	"fmt"

	"connectsphere/internal/reference/models"
	id "connectsphere/pkg/domain"
)

// Seeder is the write surface of a seedable catalog implementation.
type Seeder interface {
	UpsertCountry(ctx context.Context, c *models.Country) error
	UpsertPersonType(ctx context.Context, t *models.PersonType) error
	UpsertAddressType(ctx context.Context, t *models.AddressType) error
	UpsertPhoneNumberType(ctx context.Context, t *models.PhoneNumberType) error
	UpsertEmailAddressType(ctx context.Context, t *models.EmailAddressType) error
}

// Well-known catalog ids. Fixed so that environments seeded from scratch
// agree on the identifiers.
const (
	CountryNetherlandsID  = "7c9e6679-7425-40de-944b-e07fc1f90ae1"
	CountryGermanyID      = "7c9e6679-7425-40de-944b-e07fc1f90ae2"
	CountryUnitedStatesID = "7c9e6679-7425-40de-944b-e07fc1f90ae3"

	PersonTypeCustomerID = "1b671a64-40d5-491e-99b0-da01ff1f3341"
	PersonTypeEmployeeID = "1b671a64-40d5-491e-99b0-da01ff1f3342"

	AddressTypeHomeID = "2c961f64-40d5-491e-99b0-da01ff1f3341"
	AddressTypeWorkID = "2c961f64-40d5-491e-99b0-da01ff1f3342"

	PhoneNumberTypeMobileID   = "3d961f64-40d5-491e-99b0-da01ff1f3341"
	PhoneNumberTypeLandlineID = "3d961f64-40d5-491e-99b0-da01ff1f3342"

	EmailAddressTypePersonalID = "4e961f64-40d5-491e-99b0-da01ff1f3341"
	EmailAddressTypeWorkID     = "4e961f64-40d5-491e-99b0-da01ff1f3342"
)

type seedCountry struct {
	id, code, name, continent, capital, currency, dial string
}

var seedCountries = []seedCountry{
	{CountryNetherlandsID, "NL", "Netherlands", "Europe", "Amsterdam", "EUR", "+31"},
	{CountryGermanyID, "DE", "Germany", "Europe", "Berlin", "EUR", "+49"},
	{CountryUnitedStatesID, "US", "United States", "North America", "Washington, D.C.", "USD", "+1"},
}

// SeedDefaults writes the built-in catalog into the target. Safe to run on
// every boot: all writes are upserts.
func SeedDefaults(ctx context.Context, target Seeder) error {
	for _, sc := range seedCountries {
		countryID, err := id.ParseCountryID(sc.id)
		if err != nil {
			return fmt.Errorf("seed country %s: %w", sc.name, err)
		}
		details := models.NewCountryDetails(sc.code, sc.name, optPtr(sc.continent), optPtr(sc.capital), optPtr(sc.currency), optPtr(sc.dial))
		if !details.IsSuccess() {
			return fmt.Errorf("seed country %s: %w", sc.name, details.Err())
		}
		country := models.NewCountry(countryID, details.Value())
		if !country.IsSuccess() {
			return fmt.Errorf("seed country %s: %w", sc.name, country.Err())
		}
		if err := target.UpsertCountry(ctx, country.Value()); err != nil {
			return err
		}
	}

	for _, st := range []struct{ id, name string }{
		{PersonTypeCustomerID, "Customer"},
		{PersonTypeEmployeeID, "Employee"},
	} {
		typeID, err := id.ParsePersonTypeID(st.id)
		if err != nil {
			return fmt.Errorf("seed person type %s: %w", st.name, err)
		}
		t := models.NewPersonType(typeID, st.name)
		if !t.IsSuccess() {
			return fmt.Errorf("seed person type %s: %w", st.name, t.Err())
		}
		if err := target.UpsertPersonType(ctx, t.Value()); err != nil {
			return err
		}
	}

	for _, st := range []struct{ id, name, desc string }{
		{AddressTypeHomeID, "Home", "Primary residence"},
		{AddressTypeWorkID, "Work", "Business address"},
	} {
		typeID, err := id.ParseAddressTypeID(st.id)
		if err != nil {
			return fmt.Errorf("seed address type %s: %w", st.name, err)
		}
		t := models.NewAddressType(typeID, st.name, optPtr(st.desc))
		if !t.IsSuccess() {
			return fmt.Errorf("seed address type %s: %w", st.name, t.Err())
		}
		if err := target.UpsertAddressType(ctx, t.Value()); err != nil {
			return err
		}
	}

	for _, st := range []struct{ id, name, desc string }{
		{PhoneNumberTypeMobileID, "Mobile", "Mobile phone"},
		{PhoneNumberTypeLandlineID, "Landline", "Fixed line"},
	} {
		typeID, err := id.ParsePhoneNumberTypeID(st.id)
		if err != nil {
			return fmt.Errorf("seed phone number type %s: %w", st.name, err)
		}
		t := models.NewPhoneNumberType(typeID, st.name, optPtr(st.desc))
		if !t.IsSuccess() {
			return fmt.Errorf("seed phone number type %s: %w", st.name, t.Err())
		}
		if err := target.UpsertPhoneNumberType(ctx, t.Value()); err != nil {
			return err
		}
	}

	for _, st := range []struct{ id, name, desc string }{
		{EmailAddressTypePersonalID, "Personal", "Personal mailbox"},
		{EmailAddressTypeWorkID, "Work", "Work mailbox"},
	} {
		typeID, err := id.ParseEmailAddressTypeID(st.id)
		if err != nil {
			return fmt.Errorf("seed email address type %s: %w", st.name, err)
		}
		t := models.NewEmailAddressType(typeID, st.name, optPtr(st.desc))
		if !t.IsSuccess() {
			return fmt.Errorf("seed email address type %s: %w", st.name, t.Err())
		}
		if err := target.UpsertEmailAddressType(ctx, t.Value()); err != nil {
			return err
		}
	}

	return nil
}
