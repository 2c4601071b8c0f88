package models

import (
	"time"

	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

// EmailAddress is an email address owned by a person, classified by type.
type EmailAddress struct {
	id                 id.EmailAddressID
	personID           id.PersonID
	emailAddressTypeID id.EmailAddressTypeID
	email              Email
	lifecycle
}

func NewEmailAddress(emailAddressID id.EmailAddressID, personID id.PersonID, emailAddressTypeID id.EmailAddressTypeID, email Email, now time.Time) result.Result[*EmailAddress] {
	if errs := validateEmailAddressFields(emailAddressID, personID, emailAddressTypeID, email); len(errs) > 0 {
		return result.FailureList[*EmailAddress](errs)
	}
	return result.Success(&EmailAddress{
		id:                 emailAddressID,
		personID:           personID,
		emailAddressTypeID: emailAddressTypeID,
		email:              email,
		lifecycle:          newLifecycle(now),
	})
}

func ReconstructEmailAddress(emailAddressID id.EmailAddressID, personID id.PersonID, emailAddressTypeID id.EmailAddressTypeID, email Email, createdAt, updatedAt time.Time, deleted bool) result.Result[*EmailAddress] {
	if errs := validateEmailAddressFields(emailAddressID, personID, emailAddressTypeID, email); len(errs) > 0 {
		return result.FailureList[*EmailAddress](errs)
	}
	return result.Success(&EmailAddress{
		id:                 emailAddressID,
		personID:           personID,
		emailAddressTypeID: emailAddressTypeID,
		email:              email,
		lifecycle:          reconstructLifecycle(createdAt, updatedAt, deleted),
	})
}

func validateEmailAddressFields(emailAddressID id.EmailAddressID, personID id.PersonID, emailAddressTypeID id.EmailAddressTypeID, email Email) dErrors.List {
	var errs dErrors.List
	if emailAddressID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "email address id cannot be empty"))
	}
	if personID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "person id cannot be empty"))
	}
	if emailAddressTypeID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "email address type id cannot be empty"))
	}
	if email.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "email is required"))
	}
	return errs
}

// UpdateEmail replaces the address on an active email entity.
func (e *EmailAddress) UpdateEmail(email Email, now time.Time) result.Result[*EmailAddress] {
	if err := e.guardActive("email address"); err != nil {
		return result.Failure[*EmailAddress](err)
	}
	if email.IsZero() {
		return result.Failure[*EmailAddress](dErrors.New(dErrors.CodeInvalidInput, "email is required"))
	}
	e.email = email
	e.touch(now)
	return result.Success(e)
}

// ChangeEmailAddressType reclassifies the email address.
func (e *EmailAddress) ChangeEmailAddressType(emailAddressTypeID id.EmailAddressTypeID, now time.Time) result.Result[*EmailAddress] {
	if err := e.guardActive("email address"); err != nil {
		return result.Failure[*EmailAddress](err)
	}
	if emailAddressTypeID.IsZero() {
		return result.Failure[*EmailAddress](dErrors.New(dErrors.CodeInvalidInput, "email address type id cannot be empty"))
	}
	e.emailAddressTypeID = emailAddressTypeID
	e.touch(now)
	return result.Success(e)
}

func (e *EmailAddress) MarkAsDeleted(now time.Time) result.Result[*EmailAddress] {
	if e.deleted {
		return result.Failure[*EmailAddress](dErrors.New(dErrors.CodeConflict, "email address is already deleted"))
	}
	e.markDeleted(now)
	return result.Success(e)
}

func (e *EmailAddress) Restore(now time.Time) result.Result[*EmailAddress] {
	if !e.deleted {
		return result.Failure[*EmailAddress](dErrors.New(dErrors.CodeConflict, "email address is not deleted"))
	}
	e.restore(now)
	return result.Success(e)
}

func (e *EmailAddress) ID() id.EmailAddressID                     { return e.id }
func (e *EmailAddress) PersonID() id.PersonID                     { return e.personID }
func (e *EmailAddress) EmailAddressTypeID() id.EmailAddressTypeID { return e.emailAddressTypeID }
func (e *EmailAddress) Email() Email                              { return e.email }

func (e *EmailAddress) Equals(other *EmailAddress) bool {
	if other == nil {
		return false
	}
	return e.id == other.id &&
		e.personID == other.personID &&
		e.emailAddressTypeID == other.emailAddressTypeID &&
		e.email == other.email &&
		e.createdAt.Equal(other.createdAt) &&
		e.updatedAt.Equal(other.updatedAt) &&
		e.deleted == other.deleted
}
