// Package models holds the read-mostly reference entities: countries and the
// classification types for persons, addresses, phone numbers and email
// addresses. Reference data carries no lifecycle state; rows are replaced, not
// soft-deleted.
package models

import (
	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

// Country pairs a country identifier with its descriptive metadata.
type Country struct {
	id      id.CountryID
	details CountryDetails
}

func NewCountry(countryID id.CountryID, details CountryDetails) result.Result[*Country] {
	if countryID.IsZero() {
		return result.Failure[*Country](dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	if details.IsZero() {
		return result.Failure[*Country](dErrors.New(dErrors.CodeInvalidInput, "country details are required"))
	}
	return result.Success(&Country{id: countryID, details: details})
}

// ReconstructCountry rebuilds a country from persisted state. Reference data
// has no lifecycle, so reconstruction is the same validation as creation.
func ReconstructCountry(countryID id.CountryID, details CountryDetails) result.Result[*Country] {
	return NewCountry(countryID, details)
}

func (c *Country) ID() id.CountryID        { return c.id }
func (c *Country) Details() CountryDetails { return c.details }
