package models

import (
	"time"

	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/result"
)

// Person is the aggregate root. It exclusively owns its child collections and
// its pending-event buffer; children are only ever created, attached and
// rehydrated through the aggregate, never independently.
//
// Invariants: every child's owning person id equals the aggregate id; no two
// children of the same kind share an id; birth details, once set, are never
// replaced; a deleted person accepts no further mutation. Deletion itself is
// a persistence concern: the aggregate has no delete method, the store
// soft-deletes the row.
type Person struct {
	id                id.PersonID
	name              PersonName
	addresses         []*Address
	phoneNumbers      []*PhoneNumber
	emailAddresses    []*EmailAddress
	governmentalInfos []*GovernmentalInfo
	birthDetails      *PersonBirthDetails
	events            []Event
	lifecycle
}

// NewPerson builds a fresh aggregate and records a PersonCreated event
// carrying the request's correlation id.
func NewPerson(personID id.PersonID, name PersonName, now time.Time, correlationID string) result.Result[*Person] {
	var errs dErrors.List
	if personID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "person id cannot be empty"))
	}
	if name.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "person name is required"))
	}
	if len(errs) > 0 {
		return result.FailureList[*Person](errs)
	}
	p := &Person{
		id:        personID,
		name:      name,
		lifecycle: newLifecycle(now),
	}
	p.events = append(p.events, PersonCreated{
		eventBase:     newEventBase(now),
		PersonID:      personID,
		Name:          name,
		CorrelationID: correlationID,
	})
	return result.Success(p)
}

// ReconstructPerson rebuilds the aggregate root from persisted state with an
// empty event buffer. Children are attached afterwards via the Attach
// methods, which re-assert ownership and uniqueness without recording events.
func ReconstructPerson(personID id.PersonID, name PersonName, createdAt, updatedAt time.Time, deleted bool) result.Result[*Person] {
	var errs dErrors.List
	if personID.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "person id cannot be empty"))
	}
	if name.IsZero() {
		errs = append(errs, dErrors.New(dErrors.CodeInvalidInput, "person name is required"))
	}
	if len(errs) > 0 {
		return result.FailureList[*Person](errs)
	}
	return result.Success(&Person{
		id:        personID,
		name:      name,
		lifecycle: reconstructLifecycle(createdAt, updatedAt, deleted),
	})
}

// UpdateName replaces the person's name and records a PersonNameUpdated
// event.
func (p *Person) UpdateName(name PersonName, now time.Time, correlationID string) result.Result[*Person] {
	if err := p.guardActive("person"); err != nil {
		return result.Failure[*Person](err)
	}
	if name.IsZero() {
		return result.Failure[*Person](dErrors.New(dErrors.CodeInvalidInput, "person name is required"))
	}
	p.name = name
	p.touch(now)
	p.events = append(p.events, PersonNameUpdated{
		eventBase:     newEventBase(now),
		PersonID:      p.id,
		Name:          name,
		CorrelationID: correlationID,
	})
	return result.Success(p)
}

// childGuard applies the shared add-a-child checks in their fixed order:
// deleted aggregate, missing child, owner mismatch, then duplicate id.
func (p *Person) childGuard(kind string, present bool, ownerID id.PersonID, duplicate bool) *dErrors.Error {
	if err := p.guardActive("person"); err != nil {
		return err
	}
	if !present {
		return dErrors.Newf(dErrors.CodeInvalidInput, "%s is required", kind)
	}
	if ownerID != p.id {
		return dErrors.Newf(dErrors.CodeDomainValidation, "%s does not belong to this person", kind)
	}
	if duplicate {
		return dErrors.Newf(dErrors.CodeConflict, "%s with the same id already exists", kind)
	}
	return nil
}

// AddAddress appends an address to the aggregate and records an AddressAdded
// event.
func (p *Person) AddAddress(address *Address, now time.Time) result.Result[*Address] {
	if err := p.childGuard("address", address != nil, ownerOf(address), p.hasAddress(address)); err != nil {
		return result.Failure[*Address](err)
	}
	p.addresses = append(p.addresses, address)
	p.touch(now)
	p.events = append(p.events, AddressAdded{
		eventBase:     newEventBase(now),
		PersonID:      p.id,
		AddressID:     address.id,
		AddressTypeID: address.addressTypeID,
		CountryID:     address.countryID,
		Details:       address.details,
	})
	return result.Success(address)
}

// AddPhoneNumber appends a phone number and records a PhoneNumberAdded event.
func (p *Person) AddPhoneNumber(phone *PhoneNumber, now time.Time) result.Result[*PhoneNumber] {
	if err := p.childGuard("phone number", phone != nil, ownerOf(phone), p.hasPhoneNumber(phone)); err != nil {
		return result.Failure[*PhoneNumber](err)
	}
	p.phoneNumbers = append(p.phoneNumbers, phone)
	p.touch(now)
	p.events = append(p.events, PhoneNumberAdded{
		eventBase:         newEventBase(now),
		PersonID:          p.id,
		PhoneNumberID:     phone.id,
		PhoneNumberTypeID: phone.phoneNumberTypeID,
		CountryID:         phone.countryID,
		Number:            phone.number,
	})
	return result.Success(phone)
}

// AddEmailAddress appends an email address and records an EmailAddressAdded
// event.
func (p *Person) AddEmailAddress(email *EmailAddress, now time.Time) result.Result[*EmailAddress] {
	if err := p.childGuard("email address", email != nil, ownerOf(email), p.hasEmailAddress(email)); err != nil {
		return result.Failure[*EmailAddress](err)
	}
	p.emailAddresses = append(p.emailAddresses, email)
	p.touch(now)
	p.events = append(p.events, EmailAddressAdded{
		eventBase:          newEventBase(now),
		PersonID:           p.id,
		EmailAddressID:     email.id,
		EmailAddressTypeID: email.emailAddressTypeID,
		Email:              email.email,
	})
	return result.Success(email)
}

// AddGovernmentalInfo appends a governmental info record and records a
// GovernmentalInfoAdded event.
func (p *Person) AddGovernmentalInfo(info *GovernmentalInfo, now time.Time) result.Result[*GovernmentalInfo] {
	if err := p.childGuard("governmental info", info != nil, ownerOf(info), p.hasGovernmentalInfo(info)); err != nil {
		return result.Failure[*GovernmentalInfo](err)
	}
	p.governmentalInfos = append(p.governmentalInfos, info)
	p.touch(now)
	p.events = append(p.events, GovernmentalInfoAdded{
		eventBase:          newEventBase(now),
		PersonID:           p.id,
		GovernmentalInfoID: info.id,
		CountryID:          info.countryID,
		Details:            info.details,
	})
	return result.Success(info)
}

// SetBirthDetails attaches the single birth record and records a
// BirthDetailsSet event. A second call is a conflict: birth details are
// write-once.
func (p *Person) SetBirthDetails(details *PersonBirthDetails, now time.Time) result.Result[*PersonBirthDetails] {
	if err := p.guardActive("person"); err != nil {
		return result.Failure[*PersonBirthDetails](err)
	}
	if details == nil {
		return result.Failure[*PersonBirthDetails](dErrors.New(dErrors.CodeInvalidInput, "birth details are required"))
	}
	if details.personID != p.id {
		return result.Failure[*PersonBirthDetails](dErrors.New(dErrors.CodeDomainValidation, "birth details do not belong to this person"))
	}
	if p.birthDetails != nil {
		return result.Failure[*PersonBirthDetails](dErrors.New(dErrors.CodeConflict, "birth details are already set"))
	}
	p.birthDetails = details
	p.touch(now)
	p.events = append(p.events, BirthDetailsSet{
		eventBase:      newEventBase(now),
		PersonID:       p.id,
		BirthDetailsID: details.id,
		CountryID:      details.countryID,
		Details:        details.details,
	})
	return result.Success(details)
}

// AttachAddress rehydrates a persisted address onto the aggregate without
// touching timestamps or recording an event. Ownership and uniqueness are
// still enforced.
func (p *Person) AttachAddress(address *Address) result.Result[*Address] {
	if err := p.attachGuard("address", address != nil, ownerOf(address), p.hasAddress(address)); err != nil {
		return result.Failure[*Address](err)
	}
	p.addresses = append(p.addresses, address)
	return result.Success(address)
}

func (p *Person) AttachPhoneNumber(phone *PhoneNumber) result.Result[*PhoneNumber] {
	if err := p.attachGuard("phone number", phone != nil, ownerOf(phone), p.hasPhoneNumber(phone)); err != nil {
		return result.Failure[*PhoneNumber](err)
	}
	p.phoneNumbers = append(p.phoneNumbers, phone)
	return result.Success(phone)
}

func (p *Person) AttachEmailAddress(email *EmailAddress) result.Result[*EmailAddress] {
	if err := p.attachGuard("email address", email != nil, ownerOf(email), p.hasEmailAddress(email)); err != nil {
		return result.Failure[*EmailAddress](err)
	}
	p.emailAddresses = append(p.emailAddresses, email)
	return result.Success(email)
}

func (p *Person) AttachGovernmentalInfo(info *GovernmentalInfo) result.Result[*GovernmentalInfo] {
	if err := p.attachGuard("governmental info", info != nil, ownerOf(info), p.hasGovernmentalInfo(info)); err != nil {
		return result.Failure[*GovernmentalInfo](err)
	}
	p.governmentalInfos = append(p.governmentalInfos, info)
	return result.Success(info)
}

func (p *Person) AttachBirthDetails(details *PersonBirthDetails) result.Result[*PersonBirthDetails] {
	if err := p.attachGuard("birth details", details != nil, ownerOf(details), p.birthDetails != nil); err != nil {
		return result.Failure[*PersonBirthDetails](err)
	}
	p.birthDetails = details
	return result.Success(details)
}

// attachGuard mirrors childGuard minus the deleted check: a soft-deleted
// person still rehydrates with its children.
func (p *Person) attachGuard(kind string, present bool, ownerID id.PersonID, duplicate bool) *dErrors.Error {
	if !present {
		return dErrors.Newf(dErrors.CodeInvalidInput, "%s is required", kind)
	}
	if ownerID != p.id {
		return dErrors.Newf(dErrors.CodeDomainValidation, "%s does not belong to this person", kind)
	}
	if duplicate {
		return dErrors.Newf(dErrors.CodeConflict, "%s with the same id already exists", kind)
	}
	return nil
}

type owned interface {
	*Address | *PhoneNumber | *EmailAddress | *GovernmentalInfo | *PersonBirthDetails
	PersonID() id.PersonID
}

// ownerOf reads the owning person id, tolerating a nil child (the guard
// rejects those before the owner check is reported).
func ownerOf[T owned](child T) id.PersonID {
	if child == nil {
		return id.PersonID{}
	}
	return child.PersonID()
}

func (p *Person) hasAddress(address *Address) bool {
	if address == nil {
		return false
	}
	for _, a := range p.addresses {
		if a.id == address.id {
			return true
		}
	}
	return false
}

func (p *Person) hasPhoneNumber(phone *PhoneNumber) bool {
	if phone == nil {
		return false
	}
	for _, n := range p.phoneNumbers {
		if n.id == phone.id {
			return true
		}
	}
	return false
}

func (p *Person) hasEmailAddress(email *EmailAddress) bool {
	if email == nil {
		return false
	}
	for _, e := range p.emailAddresses {
		if e.id == email.id {
			return true
		}
	}
	return false
}

func (p *Person) hasGovernmentalInfo(info *GovernmentalInfo) bool {
	if info == nil {
		return false
	}
	for _, g := range p.governmentalInfos {
		if g.id == info.id {
			return true
		}
	}
	return false
}

func (p *Person) ID() id.PersonID  { return p.id }
func (p *Person) Name() PersonName { return p.name }

func (p *Person) Addresses() []*Address {
	out := make([]*Address, len(p.addresses))
	copy(out, p.addresses)
	return out
}

func (p *Person) PhoneNumbers() []*PhoneNumber {
	out := make([]*PhoneNumber, len(p.phoneNumbers))
	copy(out, p.phoneNumbers)
	return out
}

func (p *Person) EmailAddresses() []*EmailAddress {
	out := make([]*EmailAddress, len(p.emailAddresses))
	copy(out, p.emailAddresses)
	return out
}

func (p *Person) GovernmentalInfos() []*GovernmentalInfo {
	out := make([]*GovernmentalInfo, len(p.governmentalInfos))
	copy(out, p.governmentalInfos)
	return out
}

// BirthDetails returns the single birth record, or nil when none is set.
func (p *Person) BirthDetails() *PersonBirthDetails { return p.birthDetails }

// DomainEvents returns a read-only view of the pending buffer.
func (p *Person) DomainEvents() []Event {
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

// TakeDomainEvents drains the buffer: the pending events are returned in
// order and the buffer is left empty.
func (p *Person) TakeDomainEvents() []Event {
	out := p.events
	p.events = nil
	return out
}

// ClearDomainEvents empties the pending buffer. Idempotent.
func (p *Person) ClearDomainEvents() { p.events = nil }
