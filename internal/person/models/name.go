package models

import (
	"encoding/json"
	"strings"

	"connectsphere/pkg/result"
)

const maxNamePartLength = 50

// PersonName is the full name of a person. First and last name are required;
// middle name, title and suffix are optional and stored as empty strings when
// absent.
type PersonName struct {
	firstName  string
	middleName string
	lastName   string
	title      string
	suffix     string
}

// NewPersonName validates and builds a PersonName. Optional parts are passed
// as pointers: nil means "not provided", a blank non-nil value is rejected.
// All parts are stored trimmed.
func NewPersonName(firstName string, middleName *string, lastName string, title, suffix *string) result.Result[PersonName] {
	first, err := requireString("first name", firstName, maxNamePartLength)
	if err != nil {
		return result.Failure[PersonName](err)
	}
	middle, err := optionalString("middle name", middleName, maxNamePartLength)
	if err != nil {
		return result.Failure[PersonName](err)
	}
	last, err := requireString("last name", lastName, maxNamePartLength)
	if err != nil {
		return result.Failure[PersonName](err)
	}
	titleVal, err := optionalString("title", title, maxNamePartLength)
	if err != nil {
		return result.Failure[PersonName](err)
	}
	suffixVal, err := optionalString("suffix", suffix, maxNamePartLength)
	if err != nil {
		return result.Failure[PersonName](err)
	}
	return result.Success(PersonName{
		firstName:  first,
		middleName: middle,
		lastName:   last,
		title:      titleVal,
		suffix:     suffixVal,
	})
}

func (n PersonName) FirstName() string  { return n.firstName }
func (n PersonName) MiddleName() string { return n.middleName }
func (n PersonName) LastName() string   { return n.lastName }
func (n PersonName) Title() string      { return n.title }
func (n PersonName) Suffix() string     { return n.suffix }

func (n PersonName) IsZero() bool { return n == PersonName{} }

// Full renders the name as a single display string, skipping absent parts.
func (n PersonName) Full() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{n.title, n.firstName, n.middleName, n.lastName, n.suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (n PersonName) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FirstName  string `json:"first_name"`
		MiddleName string `json:"middle_name,omitempty"`
		LastName   string `json:"last_name"`
		Title      string `json:"title,omitempty"`
		Suffix     string `json:"suffix,omitempty"`
	}{n.firstName, n.middleName, n.lastName, n.title, n.suffix})
}
