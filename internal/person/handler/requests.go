package handler

import (
	"time"

	"connectsphere/internal/person/service"
	dErrors "connectsphere/pkg/domain-errors"
)

// Request bodies carry raw primitives; semantic validation lives in the
// value-object factories. Validate covers only what the transport must
// resolve itself, such as date formats.

const birthDateLayout = "2006-01-02"

// CreatePersonRequest is the body for POST /persons.
type CreatePersonRequest struct {
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name"`
	Title      *string `json:"title,omitempty"`
	Suffix     *string `json:"suffix,omitempty"`
}

func (r *CreatePersonRequest) Validate() error { return nil }

func (r *CreatePersonRequest) ToInput() service.CreatePersonInput {
	return service.CreatePersonInput{
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		Title:      r.Title,
		Suffix:     r.Suffix,
	}
}

// UpdatePersonNameRequest is the body for PUT /persons/{id}/name.
type UpdatePersonNameRequest struct {
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name"`
	Title      *string `json:"title,omitempty"`
	Suffix     *string `json:"suffix,omitempty"`
}

func (r *UpdatePersonNameRequest) Validate() error { return nil }

func (r *UpdatePersonNameRequest) ToInput() service.UpdatePersonNameInput {
	return service.UpdatePersonNameInput{
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		Title:      r.Title,
		Suffix:     r.Suffix,
	}
}

// AddAddressRequest is the body for POST /persons/{id}/addresses.
type AddAddressRequest struct {
	AddressTypeID string  `json:"address_type_id"`
	CountryID     string  `json:"country_id"`
	Line1         string  `json:"line1"`
	Line2         *string `json:"line2,omitempty"`
	City          string  `json:"city"`
	PostalCode    *string `json:"postal_code,omitempty"`
}

func (r *AddAddressRequest) Validate() error { return nil }

func (r *AddAddressRequest) ToInput() service.AddAddressInput {
	return service.AddAddressInput{
		AddressTypeID: r.AddressTypeID,
		CountryID:     r.CountryID,
		Line1:         r.Line1,
		Line2:         r.Line2,
		City:          r.City,
		PostalCode:    r.PostalCode,
	}
}

// AddPhoneNumberRequest is the body for POST /persons/{id}/phone-numbers.
type AddPhoneNumberRequest struct {
	PhoneNumberTypeID string `json:"phone_number_type_id"`
	CountryID         string `json:"country_id"`
	Number            string `json:"number"`
}

func (r *AddPhoneNumberRequest) Validate() error { return nil }

func (r *AddPhoneNumberRequest) ToInput() service.AddPhoneNumberInput {
	return service.AddPhoneNumberInput{
		PhoneNumberTypeID: r.PhoneNumberTypeID,
		CountryID:         r.CountryID,
		Number:            r.Number,
	}
}

// AddEmailAddressRequest is the body for POST /persons/{id}/email-addresses.
type AddEmailAddressRequest struct {
	EmailAddressTypeID string `json:"email_address_type_id"`
	Email              string `json:"email"`
}

func (r *AddEmailAddressRequest) Validate() error { return nil }

func (r *AddEmailAddressRequest) ToInput() service.AddEmailAddressInput {
	return service.AddEmailAddressInput{
		EmailAddressTypeID: r.EmailAddressTypeID,
		Email:              r.Email,
	}
}

// AddGovernmentalInfoRequest is the body for POST /persons/{id}/governmental-infos.
type AddGovernmentalInfoRequest struct {
	CountryID      string  `json:"country_id"`
	GovIDNumber    *string `json:"gov_id_number,omitempty"`
	PassportNumber *string `json:"passport_number,omitempty"`
}

func (r *AddGovernmentalInfoRequest) Validate() error { return nil }

func (r *AddGovernmentalInfoRequest) ToInput() service.AddGovernmentalInfoInput {
	return service.AddGovernmentalInfoInput{
		CountryID:      r.CountryID,
		GovIDNumber:    r.GovIDNumber,
		PassportNumber: r.PassportNumber,
	}
}

// SetBirthDetailsRequest is the body for POST /persons/{id}/birth-details.
// The birth date travels as a plain calendar date.
type SetBirthDetailsRequest struct {
	CountryID string  `json:"country_id"`
	BirthDate string  `json:"birth_date"`
	BirthCity *string `json:"birth_city,omitempty"`

	parsedBirthDate time.Time
}

func (r *SetBirthDetailsRequest) Validate() error {
	if r.BirthDate == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "birth_date is required")
	}
	parsed, err := time.Parse(birthDateLayout, r.BirthDate)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "birth_date must be formatted as YYYY-MM-DD")
	}
	r.parsedBirthDate = parsed
	return nil
}

func (r *SetBirthDetailsRequest) ToInput() service.SetBirthDetailsInput {
	return service.SetBirthDetailsInput{
		CountryID: r.CountryID,
		BirthDate: r.parsedBirthDate,
		BirthCity: r.BirthCity,
	}
}
