package models

import (
	"time"

	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

// PhoneNumber is a phone number owned by a person, classified by type and
// tied to the country whose dial plan it belongs to.
type PhoneNumber struct {
	id                id.PhoneNumberID
	personID          id.PersonID
	phoneNumberTypeID id.PhoneNumberTypeID
	countryID         id.CountryID
	number            PhoneNumberValue
	lifecycle
}

func NewPhoneNumber(phoneNumberID id.PhoneNumberID, personID id.PersonID, phoneNumberTypeID id.PhoneNumberTypeID, number PhoneNumberValue, countryID id.CountryID, now time.Time) result.Result[*PhoneNumber] {
	if errs := validatePhoneNumberFields(phoneNumberID, personID, phoneNumberTypeID, countryID, number); len(errs) > 0 {
		return result.FailureList[*PhoneNumber](errs)
	}
	return result.Success(&PhoneNumber{
		id:                phoneNumberID,
		personID:          personID,
		phoneNumberTypeID: phoneNumberTypeID,
		countryID:         countryID,
		number:            number,
		lifecycle:         newLifecycle(now),
	})
}

func ReconstructPhoneNumber(phoneNumberID id.PhoneNumberID, personID id.PersonID, phoneNumberTypeID id.PhoneNumberTypeID, number PhoneNumberValue, countryID id.CountryID, createdAt, updatedAt time.Time, deleted bool) result.Result[*PhoneNumber] {
	if errs := validatePhoneNumberFields(phoneNumberID, personID, phoneNumberTypeID, countryID, number); len(errs) > 0 {
		return result.FailureList[*PhoneNumber](errs)
	}
	return result.Success(&PhoneNumber{
		id:                phoneNumberID,
		personID:          personID,
		phoneNumberTypeID: phoneNumberTypeID,
		countryID:         countryID,
		number:            number,
		lifecycle:         reconstructLifecycle(createdAt, updatedAt, deleted),
	})
}

func validatePhoneNumberFields(phoneNumberID id.PhoneNumberID, personID id.PersonID, phoneNumberTypeID id.PhoneNumberTypeID, countryID id.CountryID, number PhoneNumberValue) dErrors.List {
	var errs dErrors.List
	if phoneNumberID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "phone number id cannot be empty"))
	}
	if personID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "person id cannot be empty"))
	}
	if phoneNumberTypeID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "phone number type id cannot be empty"))
	}
	if countryID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	if number.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "phone number is required"))
	}
	return errs
}

// UpdateNumber replaces the number on an active phone number.
func (p *PhoneNumber) UpdateNumber(number PhoneNumberValue, now time.Time) result.Result[*PhoneNumber] {
	if err := p.guardActive("phone number"); err != nil {
		return result.Failure[*PhoneNumber](err)
	}
	if number.IsZero() {
		return result.Failure[*PhoneNumber](dErrors.New(dErrors.CodeInvalidInput, "phone number is required"))
	}
	p.number = number
	p.touch(now)
	return result.Success(p)
}

// ChangePhoneNumberType reclassifies the phone number.
func (p *PhoneNumber) ChangePhoneNumberType(phoneNumberTypeID id.PhoneNumberTypeID, now time.Time) result.Result[*PhoneNumber] {
	if err := p.guardActive("phone number"); err != nil {
		return result.Failure[*PhoneNumber](err)
	}
	if phoneNumberTypeID.IsZero() {
		return result.Failure[*PhoneNumber](dErrors.New(dErrors.CodeInvalidInput, "phone number type id cannot be empty"))
	}
	p.phoneNumberTypeID = phoneNumberTypeID
	p.touch(now)
	return result.Success(p)
}

// ChangeCountry moves the number to a different country's dial plan.
func (p *PhoneNumber) ChangeCountry(countryID id.CountryID, now time.Time) result.Result[*PhoneNumber] {
	if err := p.guardActive("phone number"); err != nil {
		return result.Failure[*PhoneNumber](err)
	}
	if countryID.IsZero() {
		return result.Failure[*PhoneNumber](dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	p.countryID = countryID
	p.touch(now)
	return result.Success(p)
}

func (p *PhoneNumber) MarkAsDeleted(now time.Time) result.Result[*PhoneNumber] {
	if p.deleted {
		return result.Failure[*PhoneNumber](dErrors.New(dErrors.CodeConflict, "phone number is already deleted"))
	}
	p.markDeleted(now)
	return result.Success(p)
}

func (p *PhoneNumber) Restore(now time.Time) result.Result[*PhoneNumber] {
	if !p.deleted {
		return result.Failure[*PhoneNumber](dErrors.New(dErrors.CodeConflict, "phone number is not deleted"))
	}
	p.restore(now)
	return result.Success(p)
}

func (p *PhoneNumber) ID() id.PhoneNumberID                    { return p.id }
func (p *PhoneNumber) PersonID() id.PersonID                   { return p.personID }
func (p *PhoneNumber) PhoneNumberTypeID() id.PhoneNumberTypeID { return p.phoneNumberTypeID }
func (p *PhoneNumber) CountryID() id.CountryID                 { return p.countryID }
func (p *PhoneNumber) Number() PhoneNumberValue                { return p.number }

func (p *PhoneNumber) Equals(other *PhoneNumber) bool {
	if other == nil {
		return false
	}
	return p.id == other.id &&
		p.personID == other.personID &&
		p.phoneNumberTypeID == other.phoneNumberTypeID &&
		p.countryID == other.countryID &&
		p.number == other.number &&
		p.createdAt.Equal(other.createdAt) &&
		p.updatedAt.Equal(other.updatedAt) &&
		p.deleted == other.deleted
}
