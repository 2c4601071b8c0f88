package models

import (
	"encoding/json"

	"connectsphere/pkg/result"
)

const maxGovernmentalFieldLength = 50

// GovernmentalInfoDetails carries government-issued identifiers. Both fields
// are optional, but a supplied value must be non-blank and within length.
type GovernmentalInfoDetails struct {
	govIDNumber    string
	passportNumber string
}

// NewGovernmentalInfoDetails validates and builds a GovernmentalInfoDetails.
// Values are stored trimmed.
func NewGovernmentalInfoDetails(govIDNumber, passportNumber *string) result.Result[GovernmentalInfoDetails] {
	govID, err := optionalString("government id number", govIDNumber, maxGovernmentalFieldLength)
	if err != nil {
		return result.Failure[GovernmentalInfoDetails](err)
	}
	passport, err := optionalString("passport number", passportNumber, maxGovernmentalFieldLength)
	if err != nil {
		return result.Failure[GovernmentalInfoDetails](err)
	}
	return result.Success(GovernmentalInfoDetails{
		govIDNumber:    govID,
		passportNumber: passport,
	})
}

func (g GovernmentalInfoDetails) GovIDNumber() string    { return g.govIDNumber }
func (g GovernmentalInfoDetails) PassportNumber() string { return g.passportNumber }

func (g GovernmentalInfoDetails) IsZero() bool { return g == GovernmentalInfoDetails{} }

func (g GovernmentalInfoDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		GovIDNumber    string `json:"gov_id_number,omitempty"`
		PassportNumber string `json:"passport_number,omitempty"`
	}{g.govIDNumber, g.passportNumber})
}
