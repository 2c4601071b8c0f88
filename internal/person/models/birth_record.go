package models

import (
	"time"

	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

// PersonBirthDetails is the single birth record a person may carry: the
// BirthDetails payload plus the country of birth.
type PersonBirthDetails struct {
	id        id.BirthDetailsID
	personID  id.PersonID
	countryID id.CountryID
	details   BirthDetails
	lifecycle
}

func NewPersonBirthDetails(birthDetailsID id.BirthDetailsID, personID id.PersonID, details BirthDetails, countryID id.CountryID, now time.Time) result.Result[*PersonBirthDetails] {
	if errs := validateBirthRecordFields(birthDetailsID, personID, countryID, details); len(errs) > 0 {
		return result.FailureList[*PersonBirthDetails](errs)
	}
	return result.Success(&PersonBirthDetails{
		id:        birthDetailsID,
		personID:  personID,
		countryID: countryID,
		details:   details,
		lifecycle: newLifecycle(now),
	})
}

func ReconstructPersonBirthDetails(birthDetailsID id.BirthDetailsID, personID id.PersonID, details BirthDetails, countryID id.CountryID, createdAt, updatedAt time.Time, deleted bool) result.Result[*PersonBirthDetails] {
	if errs := validateBirthRecordFields(birthDetailsID, personID, countryID, details); len(errs) > 0 {
		return result.FailureList[*PersonBirthDetails](errs)
	}
	return result.Success(&PersonBirthDetails{
		id:        birthDetailsID,
		personID:  personID,
		countryID: countryID,
		details:   details,
		lifecycle: reconstructLifecycle(createdAt, updatedAt, deleted),
	})
}

func validateBirthRecordFields(birthDetailsID id.BirthDetailsID, personID id.PersonID, countryID id.CountryID, details BirthDetails) dErrors.List {
	var errs dErrors.List
	if birthDetailsID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "birth details id cannot be empty"))
	}
	if personID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "person id cannot be empty"))
	}
	if countryID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	if details.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "birth details are required"))
	}
	return errs
}

// UpdateDetails replaces the birth payload and country of birth together.
func (b *PersonBirthDetails) UpdateDetails(details BirthDetails, countryID id.CountryID, now time.Time) result.Result[*PersonBirthDetails] {
	if err := b.guardActive("birth details"); err != nil {
		return result.Failure[*PersonBirthDetails](err)
	}
	if details.IsZero() {
		return result.Failure[*PersonBirthDetails](dErrors.New(dErrors.CodeInvalidInput, "birth details are required"))
	}
	if countryID.IsZero() {
		return result.Failure[*PersonBirthDetails](dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	b.details = details
	b.countryID = countryID
	b.touch(now)
	return result.Success(b)
}

// ChangeCountry corrects the country of birth.
func (b *PersonBirthDetails) ChangeCountry(countryID id.CountryID, now time.Time) result.Result[*PersonBirthDetails] {
	if err := b.guardActive("birth details"); err != nil {
		return result.Failure[*PersonBirthDetails](err)
	}
	if countryID.IsZero() {
		return result.Failure[*PersonBirthDetails](dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	b.countryID = countryID
	b.touch(now)
	return result.Success(b)
}

func (b *PersonBirthDetails) MarkAsDeleted(now time.Time) result.Result[*PersonBirthDetails] {
	if b.deleted {
		return result.Failure[*PersonBirthDetails](dErrors.New(dErrors.CodeConflict, "birth details are already deleted"))
	}
	b.markDeleted(now)
	return result.Success(b)
}

func (b *PersonBirthDetails) Restore(now time.Time) result.Result[*PersonBirthDetails] {
	if !b.deleted {
		return result.Failure[*PersonBirthDetails](dErrors.New(dErrors.CodeConflict, "birth details are not deleted"))
	}
	b.restore(now)
	return result.Success(b)
}

func (b *PersonBirthDetails) ID() id.BirthDetailsID   { return b.id }
func (b *PersonBirthDetails) PersonID() id.PersonID   { return b.personID }
func (b *PersonBirthDetails) CountryID() id.CountryID { return b.countryID }
func (b *PersonBirthDetails) Details() BirthDetails   { return b.details }

func (b *PersonBirthDetails) Equals(other *PersonBirthDetails) bool {
	if other == nil {
		return false
	}
	return b.id == other.id &&
		b.personID == other.personID &&
		b.countryID == other.countryID &&
		b.details.birthDate.Equal(other.details.birthDate) &&
		b.details.birthCity == other.details.birthCity &&
		b.createdAt.Equal(other.createdAt) &&
		b.updatedAt.Equal(other.updatedAt) &&
		b.deleted == other.deleted
}
