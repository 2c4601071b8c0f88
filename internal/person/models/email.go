package models

import (
	"encoding/json"
	"strings"

	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

const maxEmailLength = 100

// Email is a validated email address.
type Email struct {
	value string
}

// NewEmail validates and builds an Email. The address must be non-blank, at
// most 100 characters, and shaped like local@domain.tld.
func NewEmail(value string) result.Result[Email] {
	trimmed, err := requireString("email", value, maxEmailLength)
	if err != nil {
		return result.Failure[Email](err)
	}
	if !validEmailShape(trimmed) {
		return result.Failure[Email](dErrors.New(dErrors.CodeInvalidInput, "email format is invalid"))
	}
	return result.Success(Email{value: trimmed})
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }
func (e Email) IsZero() bool   { return e.value == "" }

func (e Email) MarshalJSON() ([]byte, error) { return json.Marshal(e.value) }

// validEmailShape checks the minimal local@domain.tld structure: exactly one
// @, a non-empty local part, and a domain with at least one interior dot.
func validEmailShape(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") || strings.ContainsAny(s, " \t") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
