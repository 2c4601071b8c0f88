package models

import (
	"time"

	"github.com/google/uuid"

	id "connectsphere/pkg/domain"
)

// Event is a domain event recorded by a successful aggregate mutation. Events
// are pure data: the aggregate buffers them and the application layer hands
// them to the dispatcher port after the state change is persisted.
type Event interface {
	EventID() uuid.UUID
	EventName() string
	OccurredAt() time.Time
}

type eventBase struct {
	eventID    uuid.UUID
	occurredAt time.Time
}

func newEventBase(now time.Time) eventBase {
	return eventBase{eventID: uuid.New(), occurredAt: now}
}

func (e eventBase) EventID() uuid.UUID    { return e.eventID }
func (e eventBase) OccurredAt() time.Time { return e.occurredAt }

// PersonCreated is recorded when a new person aggregate is built.
type PersonCreated struct {
	eventBase
	PersonID      id.PersonID `json:"person_id"`
	Name          PersonName  `json:"name"`
	CorrelationID string      `json:"correlation_id,omitempty"`
}

func (PersonCreated) EventName() string { return "person.created" }

// PersonNameUpdated is recorded when a person's name is replaced.
type PersonNameUpdated struct {
	eventBase
	PersonID      id.PersonID `json:"person_id"`
	Name          PersonName  `json:"name"`
	CorrelationID string      `json:"correlation_id,omitempty"`
}

func (PersonNameUpdated) EventName() string { return "person.name_updated" }

// AddressAdded is recorded when an address joins the aggregate.
type AddressAdded struct {
	eventBase
	PersonID      id.PersonID      `json:"person_id"`
	AddressID     id.AddressID     `json:"address_id"`
	AddressTypeID id.AddressTypeID `json:"address_type_id"`
	CountryID     id.CountryID     `json:"country_id"`
	Details       AddressDetails   `json:"details"`
}

func (AddressAdded) EventName() string { return "person.address_added" }

// PhoneNumberAdded is recorded when a phone number joins the aggregate.
type PhoneNumberAdded struct {
	eventBase
	PersonID          id.PersonID          `json:"person_id"`
	PhoneNumberID     id.PhoneNumberID     `json:"phone_number_id"`
	PhoneNumberTypeID id.PhoneNumberTypeID `json:"phone_number_type_id"`
	CountryID         id.CountryID         `json:"country_id"`
	Number            PhoneNumberValue     `json:"number"`
}

func (PhoneNumberAdded) EventName() string { return "person.phone_number_added" }

// EmailAddressAdded is recorded when an email address joins the aggregate.
type EmailAddressAdded struct {
	eventBase
	PersonID           id.PersonID           `json:"person_id"`
	EmailAddressID     id.EmailAddressID     `json:"email_address_id"`
	EmailAddressTypeID id.EmailAddressTypeID `json:"email_address_type_id"`
	Email              Email                 `json:"email"`
}

func (EmailAddressAdded) EventName() string { return "person.email_address_added" }

// GovernmentalInfoAdded is recorded when a governmental info record joins the
// aggregate.
type GovernmentalInfoAdded struct {
	eventBase
	PersonID           id.PersonID             `json:"person_id"`
	GovernmentalInfoID id.GovernmentalInfoID   `json:"governmental_info_id"`
	CountryID          id.CountryID            `json:"country_id"`
	Details            GovernmentalInfoDetails `json:"details"`
}

func (GovernmentalInfoAdded) EventName() string { return "person.governmental_info_added" }

// BirthDetailsSet is recorded the one time birth details are attached.
type BirthDetailsSet struct {
	eventBase
	PersonID       id.PersonID       `json:"person_id"`
	BirthDetailsID id.BirthDetailsID `json:"birth_details_id"`
	CountryID      id.CountryID      `json:"country_id"`
	Details        BirthDetails      `json:"details"`
}

func (BirthDetailsSet) EventName() string { return "person.birth_details_set" }
