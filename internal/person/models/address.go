package models

import (
	"time"

	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

// Address is a postal address owned by a person. It references its address
// type and country by identifier; the descriptive fields live in the
// AddressDetails value object.
type Address struct {
	id            id.AddressID
	personID      id.PersonID
	addressTypeID id.AddressTypeID
	countryID     id.CountryID
	details       AddressDetails
	lifecycle
}

// NewAddress builds a fresh address stamped with the supplied creation time.
func NewAddress(addressID id.AddressID, personID id.PersonID, addressTypeID id.AddressTypeID, details AddressDetails, countryID id.CountryID, now time.Time) result.Result[*Address] {
	if errs := validateAddressFields(addressID, personID, addressTypeID, countryID, details); len(errs) > 0 {
		return result.FailureList[*Address](errs)
	}
	return result.Success(&Address{
		id:            addressID,
		personID:      personID,
		addressTypeID: addressTypeID,
		countryID:     countryID,
		details:       details,
		lifecycle:     newLifecycle(now),
	})
}

// ReconstructAddress rebuilds an address from persisted state, keeping the
// stored timestamps and deletion flag.
func ReconstructAddress(addressID id.AddressID, personID id.PersonID, addressTypeID id.AddressTypeID, details AddressDetails, countryID id.CountryID, createdAt, updatedAt time.Time, deleted bool) result.Result[*Address] {
	if errs := validateAddressFields(addressID, personID, addressTypeID, countryID, details); len(errs) > 0 {
		return result.FailureList[*Address](errs)
	}
	return result.Success(&Address{
		id:            addressID,
		personID:      personID,
		addressTypeID: addressTypeID,
		countryID:     countryID,
		details:       details,
		lifecycle:     reconstructLifecycle(createdAt, updatedAt, deleted),
	})
}

func validateAddressFields(addressID id.AddressID, personID id.PersonID, addressTypeID id.AddressTypeID, countryID id.CountryID, details AddressDetails) dErrors.List {
	var errs dErrors.List
	if addressID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "address id cannot be empty"))
	}
	if personID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "person id cannot be empty"))
	}
	if addressTypeID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "address type id cannot be empty"))
	}
	if countryID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	if details.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "address details are required"))
	}
	return errs
}

// UpdateDetails replaces the address payload on an active address.
func (a *Address) UpdateDetails(details AddressDetails, now time.Time) result.Result[*Address] {
	if err := a.guardActive("address"); err != nil {
		return result.Failure[*Address](err)
	}
	if details.IsZero() {
		return result.Failure[*Address](dErrors.New(dErrors.CodeInvalidInput, "address details are required"))
	}
	a.details = details
	a.touch(now)
	return result.Success(a)
}

// ChangeCountry points the address at a different country.
func (a *Address) ChangeCountry(countryID id.CountryID, now time.Time) result.Result[*Address] {
	if err := a.guardActive("address"); err != nil {
		return result.Failure[*Address](err)
	}
	if countryID.IsZero() {
		return result.Failure[*Address](dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	a.countryID = countryID
	a.touch(now)
	return result.Success(a)
}

// ChangeAddressType reclassifies the address.
func (a *Address) ChangeAddressType(addressTypeID id.AddressTypeID, now time.Time) result.Result[*Address] {
	if err := a.guardActive("address"); err != nil {
		return result.Failure[*Address](err)
	}
	if addressTypeID.IsZero() {
		return result.Failure[*Address](dErrors.New(dErrors.CodeInvalidInput, "address type id cannot be empty"))
	}
	a.addressTypeID = addressTypeID
	a.touch(now)
	return result.Success(a)
}

// MarkAsDeleted soft-deletes the address. Deleting twice is a conflict.
func (a *Address) MarkAsDeleted(now time.Time) result.Result[*Address] {
	if a.deleted {
		return result.Failure[*Address](dErrors.New(dErrors.CodeConflict, "address is already deleted"))
	}
	a.markDeleted(now)
	return result.Success(a)
}

// Restore undoes a soft delete. Restoring an active address is a conflict.
func (a *Address) Restore(now time.Time) result.Result[*Address] {
	if !a.deleted {
		return result.Failure[*Address](dErrors.New(dErrors.CodeConflict, "address is not deleted"))
	}
	a.restore(now)
	return result.Success(a)
}

func (a *Address) ID() id.AddressID                { return a.id }
func (a *Address) PersonID() id.PersonID           { return a.personID }
func (a *Address) AddressTypeID() id.AddressTypeID { return a.addressTypeID }
func (a *Address) CountryID() id.CountryID         { return a.countryID }
func (a *Address) Details() AddressDetails         { return a.details }

// Equals reports structural equality over every field, timestamps included.
func (a *Address) Equals(other *Address) bool {
	if other == nil {
		return false
	}
	return a.id == other.id &&
		a.personID == other.personID &&
		a.addressTypeID == other.addressTypeID &&
		a.countryID == other.countryID &&
		a.details == other.details &&
		a.createdAt.Equal(other.createdAt) &&
		a.updatedAt.Equal(other.updatedAt) &&
		a.deleted == other.deleted
}
