package service

import (
	"context"
	"errors"
	"time"

	"connectsphere/internal/person/models"
	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/platform/sentinel"
	"connectsphere/pkg/requestcontext"
	"connectsphere/pkg/result"
)

// Command inputs carry already-extracted primitives; the transport layer owns
// decoding and shape checks, the service owns semantic validation through the
// value-object factories. Optional fields arrive as nil pointers.

type CreatePersonInput struct {
	FirstName  string
	MiddleName *string
	LastName   string
	Title      *string
	Suffix     *string
}

type UpdatePersonNameInput struct {
	FirstName  string
	MiddleName *string
	LastName   string
	Title      *string
	Suffix     *string
}

type AddAddressInput struct {
	AddressTypeID string
	CountryID     string
	Line1         string
	Line2         *string
	City          string
	PostalCode    *string
}

type AddPhoneNumberInput struct {
	PhoneNumberTypeID string
	CountryID         string
	Number            string
}

type AddEmailAddressInput struct {
	EmailAddressTypeID string
	Email              string
}

type AddGovernmentalInfoInput struct {
	CountryID      string
	GovIDNumber    *string
	PassportNumber *string
}

type SetBirthDetailsInput struct {
	CountryID string
	BirthDate time.Time
	BirthCity *string
}

// CreatePerson validates the name, constructs a fresh aggregate and persists
// it. The PersonCreated event carries the request correlation id.
func (s *Service) CreatePerson(ctx context.Context, in CreatePersonInput) result.Result[PersonResponse] {
	return run(ctx, s, "person.create", func(ctx context.Context) result.Result[PersonResponse] {
		name := models.NewPersonName(in.FirstName, in.MiddleName, in.LastName, in.Title, in.Suffix)
		if !name.IsSuccess() {
			return result.Propagate[PersonResponse](name)
		}

		now := requestcontext.Now(ctx)
		created := models.NewPerson(id.NewPersonID(), name.Value(), now, requestcontext.CorrelationID(ctx))
		if !created.IsSuccess() {
			return result.Propagate[PersonResponse](created)
		}
		p := created.Value()

		if err := s.persons.Create(ctx, p); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return result.Failure[PersonResponse](dErrors.New(dErrors.CodeConflict, "person already exists"))
			}
			return result.Failure[PersonResponse](dErrors.Wrap(err, dErrors.CodeResourceCreationFailed, "failed to create person"))
		}

		s.dispatchEvents(ctx, p)
		if s.metrics != nil {
			s.metrics.PersonsCreated.Inc()
		}
		s.logger.InfoContext(ctx, "person created", "person_id", p.ID())
		return result.Success(personResponse(p))
	})
}

// UpdatePersonName replaces the aggregate's name.
func (s *Service) UpdatePersonName(ctx context.Context, personID id.PersonID, in UpdatePersonNameInput) result.Result[PersonResponse] {
	return run(ctx, s, "person.update_name", func(ctx context.Context) result.Result[PersonResponse] {
		name := models.NewPersonName(in.FirstName, in.MiddleName, in.LastName, in.Title, in.Suffix)
		if !name.IsSuccess() {
			return result.Propagate[PersonResponse](name)
		}

		p, derr := s.loadPerson(ctx, personID)
		if derr != nil {
			return result.Failure[PersonResponse](derr)
		}

		updated := p.UpdateName(name.Value(), requestcontext.Now(ctx), requestcontext.CorrelationID(ctx))
		if !updated.IsSuccess() {
			return result.Propagate[PersonResponse](updated)
		}

		if derr := s.persistUpdate(ctx, p); derr != nil {
			return result.Failure[PersonResponse](derr)
		}

		s.dispatchEvents(ctx, p)
		return result.Success(personResponse(p))
	})
}

// DeletePerson soft-deletes through the store. The aggregate exposes no
// delete operation of its own; deletion is a persistence-level fact and emits
// no domain event.
func (s *Service) DeletePerson(ctx context.Context, personID id.PersonID) result.Result[bool] {
	return run(ctx, s, "person.delete", func(ctx context.Context) result.Result[bool] {
		if err := s.persons.SoftDelete(ctx, personID, requestcontext.Now(ctx)); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return result.Failure[bool](dErrors.New(dErrors.CodeNotFound, "person not found"))
			}
			return result.Failure[bool](dErrors.Wrap(err, dErrors.CodeResourceUpdateFailed, "failed to delete person"))
		}
		if s.metrics != nil {
			s.metrics.PersonsDeleted.Inc()
		}
		s.logger.InfoContext(ctx, "person deleted", "person_id", personID)
		return result.Success(true)
	})
}

// AddAddress attaches a new address to the person after resolving the
// referenced address type and country.
func (s *Service) AddAddress(ctx context.Context, personID id.PersonID, in AddAddressInput) result.Result[AddressResponse] {
	return run(ctx, s, "person.add_address", func(ctx context.Context) result.Result[AddressResponse] {
		typeID, err := id.ParseAddressTypeID(in.AddressTypeID)
		if err != nil {
			return result.Failure[AddressResponse](dErrors.New(dErrors.CodeInvalidInput, "address type id must be a valid uuid"))
		}
		if _, err := s.refs.GetAddressType(ctx, typeID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return result.Failure[AddressResponse](dErrors.New(dErrors.CodeNotFound, "address type not found"))
			}
			return result.Failure[AddressResponse](dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve address type"))
		}
		countryID, derr := s.resolveCountry(ctx, in.CountryID)
		if derr != nil {
			return result.Failure[AddressResponse](derr)
		}

		details := models.NewAddressDetails(in.Line1, in.Line2, in.City, in.PostalCode)
		if !details.IsSuccess() {
			return result.Propagate[AddressResponse](details)
		}

		p, derr := s.loadPerson(ctx, personID)
		if derr != nil {
			return result.Failure[AddressResponse](derr)
		}

		now := requestcontext.Now(ctx)
		address := models.NewAddress(id.NewAddressID(), p.ID(), typeID, details.Value(), countryID, now)
		if !address.IsSuccess() {
			return result.Propagate[AddressResponse](address)
		}

		added := p.AddAddress(address.Value(), now)
		if !added.IsSuccess() {
			return result.Propagate[AddressResponse](added)
		}

		if derr := s.persistUpdate(ctx, p); derr != nil {
			return result.Failure[AddressResponse](derr)
		}

		s.dispatchEvents(ctx, p)
		return result.Success(addressResponse(added.Value()))
	})
}

// AddPhoneNumber attaches a new phone number to the person.
func (s *Service) AddPhoneNumber(ctx context.Context, personID id.PersonID, in AddPhoneNumberInput) result.Result[PhoneNumberResponse] {
	return run(ctx, s, "person.add_phone_number", func(ctx context.Context) result.Result[PhoneNumberResponse] {
		typeID, err := id.ParsePhoneNumberTypeID(in.PhoneNumberTypeID)
		if err != nil {
			return result.Failure[PhoneNumberResponse](dErrors.New(dErrors.CodeInvalidInput, "phone number type id must be a valid uuid"))
		}
		if _, err := s.refs.GetPhoneNumberType(ctx, typeID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return result.Failure[PhoneNumberResponse](dErrors.New(dErrors.CodeNotFound, "phone number type not found"))
			}
			return result.Failure[PhoneNumberResponse](dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve phone number type"))
		}
		countryID, derr := s.resolveCountry(ctx, in.CountryID)
		if derr != nil {
			return result.Failure[PhoneNumberResponse](derr)
		}

		number := models.NewPhoneNumberValue(in.Number)
		if !number.IsSuccess() {
			return result.Propagate[PhoneNumberResponse](number)
		}

		p, derr := s.loadPerson(ctx, personID)
		if derr != nil {
			return result.Failure[PhoneNumberResponse](derr)
		}

		now := requestcontext.Now(ctx)
		phone := models.NewPhoneNumber(id.NewPhoneNumberID(), p.ID(), typeID, number.Value(), countryID, now)
		if !phone.IsSuccess() {
			return result.Propagate[PhoneNumberResponse](phone)
		}

		added := p.AddPhoneNumber(phone.Value(), now)
		if !added.IsSuccess() {
			return result.Propagate[PhoneNumberResponse](added)
		}

		if derr := s.persistUpdate(ctx, p); derr != nil {
			return result.Failure[PhoneNumberResponse](derr)
		}

		s.dispatchEvents(ctx, p)
		return result.Success(phoneNumberResponse(added.Value()))
	})
}

// AddEmailAddress attaches a new email address to the person.
func (s *Service) AddEmailAddress(ctx context.Context, personID id.PersonID, in AddEmailAddressInput) result.Result[EmailAddressResponse] {
	return run(ctx, s, "person.add_email_address", func(ctx context.Context) result.Result[EmailAddressResponse] {
		typeID, err := id.ParseEmailAddressTypeID(in.EmailAddressTypeID)
		if err != nil {
			return result.Failure[EmailAddressResponse](dErrors.New(dErrors.CodeInvalidInput, "email address type id must be a valid uuid"))
		}
		if _, err := s.refs.GetEmailAddressType(ctx, typeID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return result.Failure[EmailAddressResponse](dErrors.New(dErrors.CodeNotFound, "email address type not found"))
			}
			return result.Failure[EmailAddressResponse](dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve email address type"))
		}

		email := models.NewEmail(in.Email)
		if !email.IsSuccess() {
			return result.Propagate[EmailAddressResponse](email)
		}

		p, derr := s.loadPerson(ctx, personID)
		if derr != nil {
			return result.Failure[EmailAddressResponse](derr)
		}

		now := requestcontext.Now(ctx)
		address := models.NewEmailAddress(id.NewEmailAddressID(), p.ID(), typeID, email.Value(), now)
		if !address.IsSuccess() {
			return result.Propagate[EmailAddressResponse](address)
		}

		added := p.AddEmailAddress(address.Value(), now)
		if !added.IsSuccess() {
			return result.Propagate[EmailAddressResponse](added)
		}

		if derr := s.persistUpdate(ctx, p); derr != nil {
			return result.Failure[EmailAddressResponse](derr)
		}

		s.dispatchEvents(ctx, p)
		return result.Success(emailAddressResponse(added.Value()))
	})
}

// AddGovernmentalInfo attaches a governmental-id record to the person. Both
// document numbers are optional; a record with neither is still valid.
func (s *Service) AddGovernmentalInfo(ctx context.Context, personID id.PersonID, in AddGovernmentalInfoInput) result.Result[GovernmentalInfoResponse] {
	return run(ctx, s, "person.add_governmental_info", func(ctx context.Context) result.Result[GovernmentalInfoResponse] {
		countryID, derr := s.resolveCountry(ctx, in.CountryID)
		if derr != nil {
			return result.Failure[GovernmentalInfoResponse](derr)
		}

		details := models.NewGovernmentalInfoDetails(in.GovIDNumber, in.PassportNumber)
		if !details.IsSuccess() {
			return result.Propagate[GovernmentalInfoResponse](details)
		}

		p, derr := s.loadPerson(ctx, personID)
		if derr != nil {
			return result.Failure[GovernmentalInfoResponse](derr)
		}

		now := requestcontext.Now(ctx)
		info := models.NewGovernmentalInfo(id.NewGovernmentalInfoID(), p.ID(), countryID, details.Value(), now)
		if !info.IsSuccess() {
			return result.Propagate[GovernmentalInfoResponse](info)
		}

		added := p.AddGovernmentalInfo(info.Value(), now)
		if !added.IsSuccess() {
			return result.Propagate[GovernmentalInfoResponse](added)
		}

		if derr := s.persistUpdate(ctx, p); derr != nil {
			return result.Failure[GovernmentalInfoResponse](derr)
		}

		s.dispatchEvents(ctx, p)
		return result.Success(governmentalInfoResponse(added.Value()))
	})
}

// SetBirthDetails records the person's birth details. Write-once: a second
// call for the same person fails with a conflict.
func (s *Service) SetBirthDetails(ctx context.Context, personID id.PersonID, in SetBirthDetailsInput) result.Result[BirthDetailsResponse] {
	return run(ctx, s, "person.set_birth_details", func(ctx context.Context) result.Result[BirthDetailsResponse] {
		countryID, derr := s.resolveCountry(ctx, in.CountryID)
		if derr != nil {
			return result.Failure[BirthDetailsResponse](derr)
		}

		now := requestcontext.Now(ctx)
		details := models.NewBirthDetails(in.BirthDate, in.BirthCity, now)
		if !details.IsSuccess() {
			return result.Propagate[BirthDetailsResponse](details)
		}

		p, derr := s.loadPerson(ctx, personID)
		if derr != nil {
			return result.Failure[BirthDetailsResponse](derr)
		}

		record := models.NewPersonBirthDetails(id.NewBirthDetailsID(), p.ID(), details.Value(), countryID, now)
		if !record.IsSuccess() {
			return result.Propagate[BirthDetailsResponse](record)
		}

		set := p.SetBirthDetails(record.Value(), now)
		if !set.IsSuccess() {
			return result.Propagate[BirthDetailsResponse](set)
		}

		if derr := s.persistUpdate(ctx, p); derr != nil {
			return result.Failure[BirthDetailsResponse](derr)
		}

		s.dispatchEvents(ctx, p)
		return result.Success(*birthDetailsResponse(set.Value()))
	})
}
