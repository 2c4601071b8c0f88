// Package domain defines the typed identifiers shared across the person and
// reference modules.
//
// Each identifier wraps a uuid.UUID in its own named type so the compiler
// rejects cross-entity mixups (an AddressID can never be passed where a
// PersonID is expected). Construct from external input via the Parse
// functions, which enforce the non-nil invariant at trust boundaries; direct
// casting bypasses validation and is reserved for internally generated ids.
package domain

import (
	"github.com/google/uuid"

	dErrors "connectsphere/pkg/domain-errors"
)

type (
	PersonID           uuid.UUID
	AddressID          uuid.UUID
	PhoneNumberID      uuid.UUID
	EmailAddressID     uuid.UUID
	GovernmentalInfoID uuid.UUID
	BirthDetailsID     uuid.UUID
	CountryID          uuid.UUID
	PersonTypeID       uuid.UUID
	AddressTypeID      uuid.UUID
	PhoneNumberTypeID  uuid.UUID
	EmailAddressTypeID uuid.UUID
)

func parseUUID(field, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", field)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is not a valid UUID", field)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be the nil UUID", field)
	}
	return parsed, nil
}

func ParsePersonID(s string) (PersonID, error) {
	u, err := parseUUID("person id", s)
	return PersonID(u), err
}

func ParseAddressID(s string) (AddressID, error) {
	u, err := parseUUID("address id", s)
	return AddressID(u), err
}

func ParsePhoneNumberID(s string) (PhoneNumberID, error) {
	u, err := parseUUID("phone number id", s)
	return PhoneNumberID(u), err
}

func ParseEmailAddressID(s string) (EmailAddressID, error) {
	u, err := parseUUID("email address id", s)
	return EmailAddressID(u), err
}

func ParseGovernmentalInfoID(s string) (GovernmentalInfoID, error) {
	u, err := parseUUID("governmental info id", s)
	return GovernmentalInfoID(u), err
}

func ParseBirthDetailsID(s string) (BirthDetailsID, error) {
	u, err := parseUUID("birth details id", s)
	return BirthDetailsID(u), err
}

func ParseCountryID(s string) (CountryID, error) {
	u, err := parseUUID("country id", s)
	return CountryID(u), err
}

func ParsePersonTypeID(s string) (PersonTypeID, error) {
	u, err := parseUUID("person type id", s)
	return PersonTypeID(u), err
}

func ParseAddressTypeID(s string) (AddressTypeID, error) {
	u, err := parseUUID("address type id", s)
	return AddressTypeID(u), err
}

func ParsePhoneNumberTypeID(s string) (PhoneNumberTypeID, error) {
	u, err := parseUUID("phone number type id", s)
	return PhoneNumberTypeID(u), err
}

func ParseEmailAddressTypeID(s string) (EmailAddressTypeID, error) {
	u, err := parseUUID("email address type id", s)
	return EmailAddressTypeID(u), err
}

func (id PersonID) String() string           { return uuid.UUID(id).String() }
func (id AddressID) String() string          { return uuid.UUID(id).String() }
func (id PhoneNumberID) String() string      { return uuid.UUID(id).String() }
func (id EmailAddressID) String() string     { return uuid.UUID(id).String() }
func (id GovernmentalInfoID) String() string { return uuid.UUID(id).String() }
func (id BirthDetailsID) String() string     { return uuid.UUID(id).String() }
func (id CountryID) String() string          { return uuid.UUID(id).String() }
func (id PersonTypeID) String() string       { return uuid.UUID(id).String() }
func (id AddressTypeID) String() string      { return uuid.UUID(id).String() }
func (id PhoneNumberTypeID) String() string  { return uuid.UUID(id).String() }
func (id EmailAddressTypeID) String() string { return uuid.UUID(id).String() }

func (id PersonID) IsZero() bool           { return uuid.UUID(id) == uuid.Nil }
func (id AddressID) IsZero() bool          { return uuid.UUID(id) == uuid.Nil }
func (id PhoneNumberID) IsZero() bool      { return uuid.UUID(id) == uuid.Nil }
func (id EmailAddressID) IsZero() bool     { return uuid.UUID(id) == uuid.Nil }
func (id GovernmentalInfoID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id BirthDetailsID) IsZero() bool     { return uuid.UUID(id) == uuid.Nil }
func (id CountryID) IsZero() bool          { return uuid.UUID(id) == uuid.Nil }
func (id PersonTypeID) IsZero() bool       { return uuid.UUID(id) == uuid.Nil }
func (id AddressTypeID) IsZero() bool      { return uuid.UUID(id) == uuid.Nil }
func (id PhoneNumberTypeID) IsZero() bool  { return uuid.UUID(id) == uuid.Nil }
func (id EmailAddressTypeID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// NewPersonID generates a fresh random PersonID. The other New helpers cover
// the identifiers the application mints itself; reference ids (countries,
// classification types) always arrive from the outside and are only parsed.
func NewPersonID() PersonID { return PersonID(uuid.New()) }

func NewAddressID() AddressID                   { return AddressID(uuid.New()) }
func NewPhoneNumberID() PhoneNumberID           { return PhoneNumberID(uuid.New()) }
func NewEmailAddressID() EmailAddressID         { return EmailAddressID(uuid.New()) }
func NewGovernmentalInfoID() GovernmentalInfoID { return GovernmentalInfoID(uuid.New()) }
func NewBirthDetailsID() BirthDetailsID         { return BirthDetailsID(uuid.New()) }

func (id PersonID) MarshalJSON() ([]byte, error)           { return marshalID(uuid.UUID(id)) }
func (id AddressID) MarshalJSON() ([]byte, error)          { return marshalID(uuid.UUID(id)) }
func (id PhoneNumberID) MarshalJSON() ([]byte, error)      { return marshalID(uuid.UUID(id)) }
func (id EmailAddressID) MarshalJSON() ([]byte, error)     { return marshalID(uuid.UUID(id)) }
func (id GovernmentalInfoID) MarshalJSON() ([]byte, error) { return marshalID(uuid.UUID(id)) }
func (id BirthDetailsID) MarshalJSON() ([]byte, error)     { return marshalID(uuid.UUID(id)) }
func (id CountryID) MarshalJSON() ([]byte, error)          { return marshalID(uuid.UUID(id)) }
func (id PersonTypeID) MarshalJSON() ([]byte, error)       { return marshalID(uuid.UUID(id)) }
func (id AddressTypeID) MarshalJSON() ([]byte, error)      { return marshalID(uuid.UUID(id)) }
func (id PhoneNumberTypeID) MarshalJSON() ([]byte, error)  { return marshalID(uuid.UUID(id)) }
func (id EmailAddressTypeID) MarshalJSON() ([]byte, error) { return marshalID(uuid.UUID(id)) }

func marshalID(u uuid.UUID) ([]byte, error) { return []byte(`"` + u.String() + `"`), nil }
