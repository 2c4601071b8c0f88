package models

import (
	"time"

	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

const (
	maxTypeNameLength        = 50
	maxTypeDescriptionLength = 200
)

// PersonType classifies a person (employee, customer, contact, ...). Unlike
// the other classification types it carries no description.
type PersonType struct {
	id   id.PersonTypeID
	name string
}

func NewPersonType(personTypeID id.PersonTypeID, name string) result.Result[*PersonType] {
	if personTypeID.IsZero() {
		return result.Failure[*PersonType](dErrors.New(dErrors.CodeInvalidInput, "person type id cannot be empty"))
	}
	nameVal, err := requireString("person type name", name, maxTypeNameLength)
	if err != nil {
		return result.Failure[*PersonType](err)
	}
	return result.Success(&PersonType{id: personTypeID, name: nameVal})
}

func ReconstructPersonType(personTypeID id.PersonTypeID, name string) result.Result[*PersonType] {
	return NewPersonType(personTypeID, name)
}

// UpdateName renames the type in place.
func (t *PersonType) UpdateName(name string, _ time.Time) result.Result[*PersonType] {
	nameVal, err := requireString("person type name", name, maxTypeNameLength)
	if err != nil {
		return result.Failure[*PersonType](err)
	}
	t.name = nameVal
	return result.Success(t)
}

func (t *PersonType) ID() id.PersonTypeID { return t.id }
func (t *PersonType) Name() string        { return t.name }

// classification is the shared shape of the remaining type entities: a name
// plus an optional description capped at 200 characters.
type classification struct {
	name        string
	description string
}

func newClassification(kind, name string, description *string) (classification, dErrors.List) {
	var errs dErrors.List
	nameVal, err := requireString(kind+" name", name, maxTypeNameLength)
	if err != nil {
		errs = append(errs, err)
	}
	desc, err := optionalString(kind+" description", description, maxTypeDescriptionLength)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return classification{}, errs
	}
	return classification{name: nameVal, description: desc}, nil
}

func (c *classification) Name() string        { return c.name }
func (c *classification) Description() string { return c.description }

func (c *classification) rename(kind, name string) *dErrors.Error {
	nameVal, err := requireString(kind+" name", name, maxTypeNameLength)
	if err != nil {
		return err
	}
	c.name = nameVal
	return nil
}

// AddressType classifies an address (home, work, billing, ...).
type AddressType struct {
	id id.AddressTypeID
	classification
}

func NewAddressType(addressTypeID id.AddressTypeID, name string, description *string) result.Result[*AddressType] {
	if addressTypeID.IsZero() {
		return result.Failure[*AddressType](dErrors.New(dErrors.CodeInvalidInput, "address type id cannot be empty"))
	}
	c, errs := newClassification("address type", name, description)
	if len(errs) > 0 {
		return result.FailureList[*AddressType](errs)
	}
	return result.Success(&AddressType{id: addressTypeID, classification: c})
}

func ReconstructAddressType(addressTypeID id.AddressTypeID, name string, description *string) result.Result[*AddressType] {
	return NewAddressType(addressTypeID, name, description)
}

func (t *AddressType) UpdateName(name string) result.Result[*AddressType] {
	if err := t.rename("address type", name); err != nil {
		return result.Failure[*AddressType](err)
	}
	return result.Success(t)
}

func (t *AddressType) ID() id.AddressTypeID { return t.id }

// PhoneNumberType classifies a phone number (mobile, landline, fax, ...).
type PhoneNumberType struct {
	id id.PhoneNumberTypeID
	classification
}

func NewPhoneNumberType(phoneNumberTypeID id.PhoneNumberTypeID, name string, description *string) result.Result[*PhoneNumberType] {
	if phoneNumberTypeID.IsZero() {
		return result.Failure[*PhoneNumberType](dErrors.New(dErrors.CodeInvalidInput, "phone number type id cannot be empty"))
	}
	c, errs := newClassification("phone number type", name, description)
	if len(errs) > 0 {
		return result.FailureList[*PhoneNumberType](errs)
	}
	return result.Success(&PhoneNumberType{id: phoneNumberTypeID, classification: c})
}

func ReconstructPhoneNumberType(phoneNumberTypeID id.PhoneNumberTypeID, name string, description *string) result.Result[*PhoneNumberType] {
	return NewPhoneNumberType(phoneNumberTypeID, name, description)
}

func (t *PhoneNumberType) UpdateName(name string) result.Result[*PhoneNumberType] {
	if err := t.rename("phone number type", name); err != nil {
		return result.Failure[*PhoneNumberType](err)
	}
	return result.Success(t)
}

func (t *PhoneNumberType) ID() id.PhoneNumberTypeID { return t.id }

// EmailAddressType classifies an email address (personal, work, ...).
type EmailAddressType struct {
	id id.EmailAddressTypeID
	classification
}

func NewEmailAddressType(emailAddressTypeID id.EmailAddressTypeID, name string, description *string) result.Result[*EmailAddressType] {
	if emailAddressTypeID.IsZero() {
		return result.Failure[*EmailAddressType](dErrors.New(dErrors.CodeInvalidInput, "email address type id cannot be empty"))
	}
	c, errs := newClassification("email address type", name, description)
	if len(errs) > 0 {
		return result.FailureList[*EmailAddressType](errs)
	}
	return result.Success(&EmailAddressType{id: emailAddressTypeID, classification: c})
}

func ReconstructEmailAddressType(emailAddressTypeID id.EmailAddressTypeID, name string, description *string) result.Result[*EmailAddressType] {
	return NewEmailAddressType(emailAddressTypeID, name, description)
}

func (t *EmailAddressType) UpdateName(name string) result.Result[*EmailAddressType] {
	if err := t.rename("email address type", name); err != nil {
		return result.Failure[*EmailAddressType](err)
	}
	return result.Success(t)
}

func (t *EmailAddressType) ID() id.EmailAddressTypeID { return t.id }
