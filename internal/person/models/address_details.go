package models

import (
	"encoding/json"

	"connectsphere/pkg/result"
)

const (
	maxAddressLineLength = 100
	maxPostalCodeLength  = 20
)

// AddressDetails is a structured postal address. Line 1 and city are
// required; line 2 and postal code are optional.
type AddressDetails struct {
	line1      string
	line2      string
	city       string
	postalCode string
}

// NewAddressDetails validates and builds an AddressDetails. All fields are
// stored trimmed.
func NewAddressDetails(line1 string, line2 *string, city string, postalCode *string) result.Result[AddressDetails] {
	line1Val, err := requireString("address line 1", line1, maxAddressLineLength)
	if err != nil {
		return result.Failure[AddressDetails](err)
	}
	line2Val, err := optionalString("address line 2", line2, maxAddressLineLength)
	if err != nil {
		return result.Failure[AddressDetails](err)
	}
	cityVal, err := requireString("city", city, maxAddressLineLength)
	if err != nil {
		return result.Failure[AddressDetails](err)
	}
	postal, err := optionalString("postal code", postalCode, maxPostalCodeLength)
	if err != nil {
		return result.Failure[AddressDetails](err)
	}
	return result.Success(AddressDetails{
		line1:      line1Val,
		line2:      line2Val,
		city:       cityVal,
		postalCode: postal,
	})
}

func (a AddressDetails) Line1() string      { return a.line1 }
func (a AddressDetails) Line2() string      { return a.line2 }
func (a AddressDetails) City() string       { return a.city }
func (a AddressDetails) PostalCode() string { return a.postalCode }

func (a AddressDetails) IsZero() bool { return a == AddressDetails{} }

func (a AddressDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Line1      string `json:"address_line_1"`
		Line2      string `json:"address_line_2,omitempty"`
		City       string `json:"city"`
		PostalCode string `json:"postal_code,omitempty"`
	}{a.line1, a.line2, a.city, a.postalCode})
}
