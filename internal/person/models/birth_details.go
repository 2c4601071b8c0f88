package models

import (
	"encoding/json"
	"time"

	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

const maxBirthCityLength = 100

// earliestBirthDate is the lower bound accepted for a date of birth.
var earliestBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// BirthDetails holds a person's date of birth and, optionally, the city of
// birth.
type BirthDetails struct {
	birthDate time.Time
	birthCity string
}

// NewBirthDetails validates and builds a BirthDetails. The birth date must
// not be after now and not before 1900-01-01; out-of-range dates are reported
// as invalid data rather than invalid input.
func NewBirthDetails(birthDate time.Time, birthCity *string, now time.Time) result.Result[BirthDetails] {
	if birthDate.IsZero() {
		return result.Failure[BirthDetails](dErrors.New(dErrors.CodeInvalidInput, "birth date is required"))
	}
	if birthDate.After(now) {
		return result.Failure[BirthDetails](dErrors.New(dErrors.CodeInvalidData, "birth date cannot be in the future"))
	}
	if birthDate.Before(earliestBirthDate) {
		return result.Failure[BirthDetails](dErrors.New(dErrors.CodeInvalidData, "birth date cannot be before 1900"))
	}
	city, err := optionalString("birth city", birthCity, maxBirthCityLength)
	if err != nil {
		return result.Failure[BirthDetails](err)
	}
	return result.Success(BirthDetails{birthDate: birthDate, birthCity: city})
}

// ReconstructBirthDetails rebuilds the value object from persisted state
// without re-applying the date window: the bounds were enforced when the
// record was written and must not invalidate stored history as the clock
// advances.
func ReconstructBirthDetails(birthDate time.Time, birthCity string) BirthDetails {
	return BirthDetails{birthDate: birthDate, birthCity: birthCity}
}

func (b BirthDetails) BirthDate() time.Time { return b.birthDate }
func (b BirthDetails) BirthCity() string    { return b.birthCity }

func (b BirthDetails) IsZero() bool { return b.birthDate.IsZero() && b.birthCity == "" }

func (b BirthDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		BirthDate time.Time `json:"birth_date"`
		BirthCity string    `json:"birth_city,omitempty"`
	}{b.birthDate, b.birthCity})
}
