package service

import (
	"time"

	"connectsphere/internal/person/models"
)

// Response shapes are flattened snapshots of the aggregate's public state.
// Optional string fields surface as omitted JSON keys; an absent update
// timestamp surfaces as null.

type NameResponse struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Title      string `json:"title,omitempty"`
	Suffix     string `json:"suffix,omitempty"`
	Full       string `json:"full_name"`
}

type AddressResponse struct {
	ID            string     `json:"id"`
	PersonID      string     `json:"person_id"`
	AddressTypeID string     `json:"address_type_id"`
	CountryID     string     `json:"country_id"`
	Line1         string     `json:"line1"`
	Line2         string     `json:"line2,omitempty"`
	City          string     `json:"city"`
	PostalCode    string     `json:"postal_code,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type PhoneNumberResponse struct {
	ID                string     `json:"id"`
	PersonID          string     `json:"person_id"`
	PhoneNumberTypeID string     `json:"phone_number_type_id"`
	CountryID         string     `json:"country_id"`
	Number            string     `json:"number"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

type EmailAddressResponse struct {
	ID                 string     `json:"id"`
	PersonID           string     `json:"person_id"`
	EmailAddressTypeID string     `json:"email_address_type_id"`
	Email              string     `json:"email"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

type GovernmentalInfoResponse struct {
	ID             string     `json:"id"`
	PersonID       string     `json:"person_id"`
	CountryID      string     `json:"country_id"`
	GovIDNumber    string     `json:"gov_id_number,omitempty"`
	PassportNumber string     `json:"passport_number,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type BirthDetailsResponse struct {
	ID        string     `json:"id"`
	PersonID  string     `json:"person_id"`
	CountryID string     `json:"country_id"`
	BirthDate time.Time  `json:"birth_date"`
	BirthCity string     `json:"birth_city,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type PersonResponse struct {
	ID                string                     `json:"id"`
	Name              NameResponse               `json:"name"`
	Addresses         []AddressResponse          `json:"addresses"`
	PhoneNumbers      []PhoneNumberResponse      `json:"phone_numbers"`
	EmailAddresses    []EmailAddressResponse     `json:"email_addresses"`
	GovernmentalInfos []GovernmentalInfoResponse `json:"governmental_infos"`
	BirthDetails      *BirthDetailsResponse      `json:"birth_details"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         *time.Time                 `json:"updated_at"`
}

type PersonListResponse struct {
	Items []PersonResponse `json:"items"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
	Total int              `json:"total"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func nameResponse(n models.PersonName) NameResponse {
	return NameResponse{
		FirstName:  n.FirstName(),
		MiddleName: n.MiddleName(),
		LastName:   n.LastName(),
		Title:      n.Title(),
		Suffix:     n.Suffix(),
		Full:       n.Full(),
	}
}

func addressResponse(a *models.Address) AddressResponse {
	return AddressResponse{
		ID:            a.ID().String(),
		PersonID:      a.PersonID().String(),
		AddressTypeID: a.AddressTypeID().String(),
		CountryID:     a.CountryID().String(),
		Line1:         a.Details().Line1(),
		Line2:         a.Details().Line2(),
		City:          a.Details().City(),
		PostalCode:    a.Details().PostalCode(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     optionalTime(a.UpdatedAt()),
	}
}

func phoneNumberResponse(p *models.PhoneNumber) PhoneNumberResponse {
	return PhoneNumberResponse{
		ID:                p.ID().String(),
		PersonID:          p.PersonID().String(),
		PhoneNumberTypeID: p.PhoneNumberTypeID().String(),
		CountryID:         p.CountryID().String(),
		Number:            p.Number().Number(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         optionalTime(p.UpdatedAt()),
	}
}

func emailAddressResponse(e *models.EmailAddress) EmailAddressResponse {
	return EmailAddressResponse{
		ID:                 e.ID().String(),
		PersonID:           e.PersonID().String(),
		EmailAddressTypeID: e.EmailAddressTypeID().String(),
		Email:              e.Email().Value(),
		CreatedAt:          e.CreatedAt(),
		UpdatedAt:          optionalTime(e.UpdatedAt()),
	}
}

func governmentalInfoResponse(g *models.GovernmentalInfo) GovernmentalInfoResponse {
	return GovernmentalInfoResponse{
		ID:             g.ID().String(),
		PersonID:       g.PersonID().String(),
		CountryID:      g.CountryID().String(),
		GovIDNumber:    g.Details().GovIDNumber(),
		PassportNumber: g.Details().PassportNumber(),
		CreatedAt:      g.CreatedAt(),
		UpdatedAt:      optionalTime(g.UpdatedAt()),
	}
}

func birthDetailsResponse(b *models.PersonBirthDetails) *BirthDetailsResponse {
	if b == nil {
		return nil
	}
	return &BirthDetailsResponse{
		ID:        b.ID().String(),
		PersonID:  b.PersonID().String(),
		CountryID: b.CountryID().String(),
		BirthDate: b.Details().BirthDate(),
		BirthCity: b.Details().BirthCity(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: optionalTime(b.UpdatedAt()),
	}
}

func personResponse(p *models.Person) PersonResponse {
	addresses := make([]AddressResponse, 0, len(p.Addresses()))
	for _, a := range p.Addresses() {
		addresses = append(addresses, addressResponse(a))
	}
	phones := make([]PhoneNumberResponse, 0, len(p.PhoneNumbers()))
	for _, n := range p.PhoneNumbers() {
		phones = append(phones, phoneNumberResponse(n))
	}
	emails := make([]EmailAddressResponse, 0, len(p.EmailAddresses()))
	for _, e := range p.EmailAddresses() {
		emails = append(emails, emailAddressResponse(e))
	}
	infos := make([]GovernmentalInfoResponse, 0, len(p.GovernmentalInfos()))
	for _, g := range p.GovernmentalInfos() {
		infos = append(infos, governmentalInfoResponse(g))
	}
	return PersonResponse{
		ID:                p.ID().String(),
		Name:              nameResponse(p.Name()),
		Addresses:         addresses,
		PhoneNumbers:      phones,
		EmailAddresses:    emails,
		GovernmentalInfos: infos,
		BirthDetails:      birthDetailsResponse(p.BirthDetails()),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         optionalTime(p.UpdatedAt()),
	}
}
