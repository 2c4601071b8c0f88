// Package person persists the person aggregate. Both implementations store
// flattened rows (one per entity) and rebuild the aggregate through the
// domain's Reconstruct and Attach paths, so persisted state re-passes the
// ownership and uniqueness checks on every load.
//
// Stores are pure I/O: soft-delete filtering and row assembly live here,
// every business rule lives in the domain and service layers. Reads only see
// active persons; a soft-deleted row keeps its history but drops out of every
// query.
package person

import (
	"fmt"
	"time"

	"connectsphere/internal/person/models"
	id "connectsphere/pkg/domain"
)

type personRow struct {
	ID         id.PersonID
	FirstName  string
	MiddleName string
	LastName   string
	Title      string
	Suffix     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsDeleted  bool
}

type addressRow struct {
	ID            id.AddressID
	PersonID      id.PersonID
	AddressTypeID id.AddressTypeID
	CountryID     id.CountryID
	Line1         string
	Line2         string
	City          string
	PostalCode    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	IsDeleted     bool
}

type phoneNumberRow struct {
	ID                id.PhoneNumberID
	PersonID          id.PersonID
	PhoneNumberTypeID id.PhoneNumberTypeID
	CountryID         id.CountryID
	Number            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	IsDeleted         bool
}

type emailAddressRow struct {
	ID                 id.EmailAddressID
	PersonID           id.PersonID
	EmailAddressTypeID id.EmailAddressTypeID
	Email              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	IsDeleted          bool
}

type governmentalInfoRow struct {
	ID             id.GovernmentalInfoID
	PersonID       id.PersonID
	CountryID      id.CountryID
	GovIDNumber    string
	PassportNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	IsDeleted      bool
}

type birthDetailsRow struct {
	ID        id.BirthDetailsID
	PersonID  id.PersonID
	CountryID id.CountryID
	BirthDate time.Time
	BirthCity string
	CreatedAt time.Time
	UpdatedAt time.Time
	IsDeleted bool
}

// optPtr maps the persisted empty-string representation of an absent optional
// field back to the factories' pointer convention.
func optPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// snapshot flattens an aggregate into rows. The inverse of assemble.
func snapshot(p *models.Person) (personRow, []addressRow, []phoneNumberRow, []emailAddressRow, []governmentalInfoRow, *birthDetailsRow) {
	name := p.Name()
	pr := personRow{
		ID:         p.ID(),
		FirstName:  name.FirstName(),
		MiddleName: name.MiddleName(),
		LastName:   name.LastName(),
		Title:      name.Title(),
		Suffix:     name.Suffix(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
		IsDeleted:  p.IsDeleted(),
	}

	var addresses []addressRow
	for _, a := range p.Addresses() {
		d := a.Details()
		addresses = append(addresses, addressRow{
			ID:            a.ID(),
			PersonID:      a.PersonID(),
			AddressTypeID: a.AddressTypeID(),
			CountryID:     a.CountryID(),
			Line1:         d.Line1(),
			Line2:         d.Line2(),
			City:          d.City(),
			PostalCode:    d.PostalCode(),
			CreatedAt:     a.CreatedAt(),
			UpdatedAt:     a.UpdatedAt(),
			IsDeleted:     a.IsDeleted(),
		})
	}

	var phones []phoneNumberRow
	for _, n := range p.PhoneNumbers() {
		phones = append(phones, phoneNumberRow{
			ID:                n.ID(),
			PersonID:          n.PersonID(),
			PhoneNumberTypeID: n.PhoneNumberTypeID(),
			CountryID:         n.CountryID(),
			Number:            n.Number().Number(),
			CreatedAt:         n.CreatedAt(),
			UpdatedAt:         n.UpdatedAt(),
			IsDeleted:         n.IsDeleted(),
		})
	}

	var emails []emailAddressRow
	for _, e := range p.EmailAddresses() {
		emails = append(emails, emailAddressRow{
			ID:                 e.ID(),
			PersonID:           e.PersonID(),
			EmailAddressTypeID: e.EmailAddressTypeID(),
			Email:              e.Email().Value(),
			CreatedAt:          e.CreatedAt(),
			UpdatedAt:          e.UpdatedAt(),
			IsDeleted:          e.IsDeleted(),
		})
	}

	var infos []governmentalInfoRow
	for _, g := range p.GovernmentalInfos() {
		d := g.Details()
		infos = append(infos, governmentalInfoRow{
			ID:             g.ID(),
			PersonID:       g.PersonID(),
			CountryID:      g.CountryID(),
			GovIDNumber:    d.GovIDNumber(),
			PassportNumber: d.PassportNumber(),
			CreatedAt:      g.CreatedAt(),
			UpdatedAt:      g.UpdatedAt(),
			IsDeleted:      g.IsDeleted(),
		})
	}

	var birth *birthDetailsRow
	if b := p.BirthDetails(); b != nil {
		d := b.Details()
		birth = &birthDetailsRow{
			ID:        b.ID(),
			PersonID:  b.PersonID(),
			CountryID: b.CountryID(),
			BirthDate: d.BirthDate(),
			BirthCity: d.BirthCity(),
			CreatedAt: b.CreatedAt(),
			UpdatedAt: b.UpdatedAt(),
			IsDeleted: b.IsDeleted(),
		}
	}

	return pr, addresses, phones, emails, infos, birth
}

// assemble rebuilds the aggregate from rows. A row set that no longer passes
// domain validation is reported as corruption, not as a domain failure.
func assemble(pr personRow, addresses []addressRow, phones []phoneNumberRow, emails []emailAddressRow, infos []governmentalInfoRow, birth *birthDetailsRow) (*models.Person, error) {
	nameRes := models.NewPersonName(pr.FirstName, optPtr(pr.MiddleName), pr.LastName, optPtr(pr.Title), optPtr(pr.Suffix))
	if !nameRes.IsSuccess() {
		return nil, fmt.Errorf("assemble person %s: corrupt name: %w", pr.ID, nameRes.Err())
	}
	personRes := models.ReconstructPerson(pr.ID, nameRes.Value(), pr.CreatedAt, pr.UpdatedAt, pr.IsDeleted)
	if !personRes.IsSuccess() {
		return nil, fmt.Errorf("assemble person %s: %w", pr.ID, personRes.Err())
	}
	p := personRes.Value()

	for _, r := range addresses {
		detailsRes := models.NewAddressDetails(r.Line1, optPtr(r.Line2), r.City, optPtr(r.PostalCode))
		if !detailsRes.IsSuccess() {
			return nil, fmt.Errorf("assemble address %s: corrupt details: %w", r.ID, detailsRes.Err())
		}
		addrRes := models.ReconstructAddress(r.ID, r.PersonID, r.AddressTypeID, detailsRes.Value(), r.CountryID, r.CreatedAt, r.UpdatedAt, r.IsDeleted)
		if !addrRes.IsSuccess() {
			return nil, fmt.Errorf("assemble address %s: %w", r.ID, addrRes.Err())
		}
		if res := p.AttachAddress(addrRes.Value()); !res.IsSuccess() {
			return nil, fmt.Errorf("attach address %s: %w", r.ID, res.Err())
		}
	}

	for _, r := range phones {
		numberRes := models.NewPhoneNumberValue(r.Number)
		if !numberRes.IsSuccess() {
			return nil, fmt.Errorf("assemble phone number %s: corrupt number: %w", r.ID, numberRes.Err())
		}
		phoneRes := models.ReconstructPhoneNumber(r.ID, r.PersonID, r.PhoneNumberTypeID, numberRes.Value(), r.CountryID, r.CreatedAt, r.UpdatedAt, r.IsDeleted)
		if !phoneRes.IsSuccess() {
			return nil, fmt.Errorf("assemble phone number %s: %w", r.ID, phoneRes.Err())
		}
		if res := p.AttachPhoneNumber(phoneRes.Value()); !res.IsSuccess() {
			return nil, fmt.Errorf("attach phone number %s: %w", r.ID, res.Err())
		}
	}

	for _, r := range emails {
		emailRes := models.NewEmail(r.Email)
		if !emailRes.IsSuccess() {
			return nil, fmt.Errorf("assemble email address %s: corrupt email: %w", r.ID, emailRes.Err())
		}
		entityRes := models.ReconstructEmailAddress(r.ID, r.PersonID, r.EmailAddressTypeID, emailRes.Value(), r.CreatedAt, r.UpdatedAt, r.IsDeleted)
		if !entityRes.IsSuccess() {
			return nil, fmt.Errorf("assemble email address %s: %w", r.ID, entityRes.Err())
		}
		if res := p.AttachEmailAddress(entityRes.Value()); !res.IsSuccess() {
			return nil, fmt.Errorf("attach email address %s: %w", r.ID, res.Err())
		}
	}

	for _, r := range infos {
		detailsRes := models.NewGovernmentalInfoDetails(optPtr(r.GovIDNumber), optPtr(r.PassportNumber))
		if !detailsRes.IsSuccess() {
			return nil, fmt.Errorf("assemble governmental info %s: corrupt details: %w", r.ID, detailsRes.Err())
		}
		infoRes := models.ReconstructGovernmentalInfo(r.ID, r.PersonID, r.CountryID, detailsRes.Value(), r.CreatedAt, r.UpdatedAt, r.IsDeleted)
		if !infoRes.IsSuccess() {
			return nil, fmt.Errorf("assemble governmental info %s: %w", r.ID, infoRes.Err())
		}
		if res := p.AttachGovernmentalInfo(infoRes.Value()); !res.IsSuccess() {
			return nil, fmt.Errorf("attach governmental info %s: %w", r.ID, res.Err())
		}
	}

	if birth != nil {
		details := models.ReconstructBirthDetails(birth.BirthDate, birth.BirthCity)
		recordRes := models.ReconstructPersonBirthDetails(birth.ID, birth.PersonID, details, birth.CountryID, birth.CreatedAt, birth.UpdatedAt, birth.IsDeleted)
		if !recordRes.IsSuccess() {
			return nil, fmt.Errorf("assemble birth details %s: %w", birth.ID, recordRes.Err())
		}
		if res := p.AttachBirthDetails(recordRes.Value()); !res.IsSuccess() {
			return nil, fmt.Errorf("attach birth details %s: %w", birth.ID, res.Err())
		}
	}

	return p, nil
}
