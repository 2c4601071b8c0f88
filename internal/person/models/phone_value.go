package models

import (
	"encoding/json"

	"connectsphere/pkg/result"
)

const maxPhoneNumberLength = 25

// PhoneNumberValue is a validated phone number string. No format is imposed
// beyond presence and length; dial-code semantics live with the country
// reference data.
type PhoneNumberValue struct {
	number string
}

func NewPhoneNumberValue(number string) result.Result[PhoneNumberValue] {
	trimmed, err := requireString("phone number", number, maxPhoneNumberLength)
	if err != nil {
		return result.Failure[PhoneNumberValue](err)
	}
	return result.Success(PhoneNumberValue{number: trimmed})
}

func (p PhoneNumberValue) Number() string { return p.number }
func (p PhoneNumberValue) String() string { return p.number }
func (p PhoneNumberValue) IsZero() bool   { return p.number == "" }

func (p PhoneNumberValue) MarshalJSON() ([]byte, error) { return json.Marshal(p.number) }
