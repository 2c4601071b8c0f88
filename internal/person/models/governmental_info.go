package models

import (
	"time"

	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

// GovernmentalInfo records government-issued identifiers for a person in the
// context of one issuing country. The details payload may legitimately be
// empty: the record then only asserts the person/country relationship.
type GovernmentalInfo struct {
	id        id.GovernmentalInfoID
	personID  id.PersonID
	countryID id.CountryID
	details   GovernmentalInfoDetails
	lifecycle
}

func NewGovernmentalInfo(governmentalInfoID id.GovernmentalInfoID, personID id.PersonID, countryID id.CountryID, details GovernmentalInfoDetails, now time.Time) result.Result[*GovernmentalInfo] {
	if errs := validateGovernmentalInfoFields(governmentalInfoID, personID, countryID); len(errs) > 0 {
		return result.FailureList[*GovernmentalInfo](errs)
	}
	return result.Success(&GovernmentalInfo{
		id:        governmentalInfoID,
		personID:  personID,
		countryID: countryID,
		details:   details,
		lifecycle: newLifecycle(now),
	})
}

func ReconstructGovernmentalInfo(governmentalInfoID id.GovernmentalInfoID, personID id.PersonID, countryID id.CountryID, details GovernmentalInfoDetails, createdAt, updatedAt time.Time, deleted bool) result.Result[*GovernmentalInfo] {
	if errs := validateGovernmentalInfoFields(governmentalInfoID, personID, countryID); len(errs) > 0 {
		return result.FailureList[*GovernmentalInfo](errs)
	}
	return result.Success(&GovernmentalInfo{
		id:        governmentalInfoID,
		personID:  personID,
		countryID: countryID,
		details:   details,
		lifecycle: reconstructLifecycle(createdAt, updatedAt, deleted),
	})
}

func validateGovernmentalInfoFields(governmentalInfoID id.GovernmentalInfoID, personID id.PersonID, countryID id.CountryID) dErrors.List {
	var errs dErrors.List
	if governmentalInfoID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "governmental info id cannot be empty"))
	}
	if personID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "person id cannot be empty"))
	}
	if countryID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	return errs
}

// Update replaces both the issuing country and the details in one step.
func (g *GovernmentalInfo) Update(countryID id.CountryID, details GovernmentalInfoDetails, now time.Time) result.Result[*GovernmentalInfo] {
	if err := g.guardActive("governmental info"); err != nil {
		return result.Failure[*GovernmentalInfo](err)
	}
	if countryID.IsZero() {
		return result.Failure[*GovernmentalInfo](dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	g.countryID = countryID
	g.details = details
	g.touch(now)
	return result.Success(g)
}

// ChangeCountry repoints the record at a different issuing country.
func (g *GovernmentalInfo) ChangeCountry(countryID id.CountryID, now time.Time) result.Result[*GovernmentalInfo] {
	if err := g.guardActive("governmental info"); err != nil {
		return result.Failure[*GovernmentalInfo](err)
	}
	if countryID.IsZero() {
		return result.Failure[*GovernmentalInfo](dErrors.New(dErrors.CodeInvalidInput, "country id cannot be empty"))
	}
	g.countryID = countryID
	g.touch(now)
	return result.Success(g)
}

func (g *GovernmentalInfo) MarkAsDeleted(now time.Time) result.Result[*GovernmentalInfo] {
	if g.deleted {
		return result.Failure[*GovernmentalInfo](dErrors.New(dErrors.CodeConflict, "governmental info is already deleted"))
	}
	g.markDeleted(now)
	return result.Success(g)
}

func (g *GovernmentalInfo) Restore(now time.Time) result.Result[*GovernmentalInfo] {
	if !g.deleted {
		return result.Failure[*GovernmentalInfo](dErrors.New(dErrors.CodeConflict, "governmental info is not deleted"))
	}
	g.restore(now)
	return result.Success(g)
}

func (g *GovernmentalInfo) ID() id.GovernmentalInfoID        { return g.id }
func (g *GovernmentalInfo) PersonID() id.PersonID            { return g.personID }
func (g *GovernmentalInfo) CountryID() id.CountryID          { return g.countryID }
func (g *GovernmentalInfo) Details() GovernmentalInfoDetails { return g.details }

func (g *GovernmentalInfo) Equals(other *GovernmentalInfo) bool {
	if other == nil {
		return false
	}
	return g.id == other.id &&
		g.personID == other.personID &&
		g.countryID == other.countryID &&
		g.details == other.details &&
		g.createdAt.Equal(other.createdAt) &&
		g.updatedAt.Equal(other.updatedAt) &&
		g.deleted == other.deleted
}
