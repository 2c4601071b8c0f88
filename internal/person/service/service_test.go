package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"connectsphere/internal/person/models"
	personstore "connectsphere/internal/person/store/person"
	refstore "connectsphere/internal/reference/store"
	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
	"connectsphere/pkg/requestcontext"
	"connectsphere/pkg/result"
)

type captureDispatcher struct {
	mu       sync.Mutex
	events   []models.Event
	failWith error
}

func (d *captureDispatcher) Dispatch(_ context.Context, event models.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failWith != nil {
		return d.failWith
	}
	d.events = append(d.events, event)
	return nil
}

func (d *captureDispatcher) names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, 0, len(d.events))
	for _, e := range d.events {
		names = append(names, e.EventName())
	}
	return names
}

type PersonServiceSuite struct {
	suite.Suite
	ctx        context.Context
	now        time.Time
	store      *personstore.InMemory
	refs       *refstore.InMemory
	dispatcher *captureDispatcher
	service    *Service
}

func TestPersonServiceSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceSuite))
}

func (s *PersonServiceSuite) SetupTest() {
	s.now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), s.now)
	s.ctx = requestcontext.WithCorrelationID(ctx, "corr-123")

	s.store = personstore.NewInMemory()
	s.refs = refstore.NewInMemory()
	s.Require().NoError(refstore.SeedDefaults(context.Background(), s.refs))
	s.dispatcher = &captureDispatcher{}
	s.service = New(s.store, s.refs, s.dispatcher)
}

func (s *PersonServiceSuite) createPerson() PersonResponse {
	res := s.service.CreatePerson(s.ctx, CreatePersonInput{FirstName: "Jane", LastName: "Doe"})
	s.Require().True(res.IsSuccess(), "create person: %v", res.Err())
	return res.Value()
}

func (s *PersonServiceSuite) personID(res PersonResponse) id.PersonID {
	personID, err := id.ParsePersonID(res.ID)
	s.Require().NoError(err)
	return personID
}

func strPtr(v string) *string { return &v }

func (s *PersonServiceSuite) TestCreatePerson() {
	res := s.service.CreatePerson(s.ctx, CreatePersonInput{
		FirstName:  "Jane",
		MiddleName: strPtr("Q"),
		LastName:   "Doe",
		Title:      strPtr("Dr."),
	})
	s.Require().True(res.IsSuccess(), "unexpected failure: %v", res.Err())

	person := res.Value()
	s.Equal("Jane", person.Name.FirstName)
	s.Equal("Q", person.Name.MiddleName)
	s.Equal("Dr. Jane Q Doe", person.Name.Full)
	s.Equal(s.now, person.CreatedAt)
	s.Nil(person.UpdatedAt)
	s.Empty(person.Addresses)
	s.Nil(person.BirthDetails)

	s.Equal([]string{"person.created"}, s.dispatcher.names())
	created, ok := s.dispatcher.events[0].(models.PersonCreated)
	s.Require().True(ok)
	s.Equal("corr-123", created.CorrelationID)

	loaded := s.service.GetPersonByID(s.ctx, s.personID(person))
	s.Require().True(loaded.IsSuccess())
	s.Equal(person.ID, loaded.Value().ID)
}

func (s *PersonServiceSuite) TestCreatePersonInvalidName() {
	res := s.service.CreatePerson(s.ctx, CreatePersonInput{FirstName: "  ", LastName: "Doe"})
	s.Require().False(res.IsSuccess())
	s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidInput))
	s.Empty(s.dispatcher.names())

	count := s.service.CountPersons(s.ctx)
	s.Require().True(count.IsSuccess())
	s.Zero(count.Value())
}

func (s *PersonServiceSuite) TestFailuresCarryCorrelationID() {
	res := s.service.CreatePerson(s.ctx, CreatePersonInput{FirstName: "", LastName: ""})
	s.Require().False(res.IsSuccess())
	for _, e := range res.Errors() {
		s.Equal("corr-123", e.CorrelationID)
	}
}

func (s *PersonServiceSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	res := s.service.CreatePerson(ctx, CreatePersonInput{FirstName: "Jane", LastName: "Doe"})
	s.Require().False(res.IsSuccess())
	s.True(dErrors.HasCode(res.Err(), dErrors.CodeOperationCancelled))
}

func (s *PersonServiceSuite) TestDispatchFailureDoesNotFailCommand() {
	s.dispatcher.failWith = context.DeadlineExceeded

	res := s.service.CreatePerson(s.ctx, CreatePersonInput{FirstName: "Jane", LastName: "Doe"})
	s.Require().True(res.IsSuccess(), "dispatch is best-effort: %v", res.Err())
	s.Empty(s.dispatcher.names())
}

func (s *PersonServiceSuite) TestUpdatePersonName() {
	person := s.createPerson()

	res := s.service.UpdatePersonName(s.ctx, s.personID(person), UpdatePersonNameInput{FirstName: "Janet", LastName: "Doe"})
	s.Require().True(res.IsSuccess(), "unexpected failure: %v", res.Err())
	s.Equal("Janet", res.Value().Name.FirstName)
	s.Require().NotNil(res.Value().UpdatedAt)
	s.Equal(s.now, *res.Value().UpdatedAt)
	s.Equal([]string{"person.created", "person.name_updated"}, s.dispatcher.names())
}

func (s *PersonServiceSuite) TestUpdatePersonNameNotFound() {
	res := s.service.UpdatePersonName(s.ctx, id.NewPersonID(), UpdatePersonNameInput{FirstName: "Janet", LastName: "Doe"})
	s.Require().False(res.IsSuccess())
	s.True(dErrors.HasCode(res.Err(), dErrors.CodeNotFound))
}

func (s *PersonServiceSuite) TestDeletePerson() {
	person := s.createPerson()
	personID := s.personID(person)

	res := s.service.DeletePerson(s.ctx, personID)
	s.Require().True(res.IsSuccess())
	s.True(res.Value())

	loaded := s.service.GetPersonByID(s.ctx, personID)
	s.Require().False(loaded.IsSuccess())
	s.True(dErrors.HasCode(loaded.Err(), dErrors.CodeNotFound))

	again := s.service.DeletePerson(s.ctx, personID)
	s.Require().False(again.IsSuccess())
	s.True(dErrors.HasCode(again.Err(), dErrors.CodeNotFound))
}

func (s *PersonServiceSuite) TestAddAddress() {
	person := s.createPerson()

	res := s.service.AddAddress(s.ctx, s.personID(person), AddAddressInput{
		AddressTypeID: refstore.AddressTypeHomeID,
		CountryID:     refstore.CountryNetherlandsID,
		Line1:         "Keizersgracht 1",
		City:          "Amsterdam",
		PostalCode:    strPtr("1015 CC"),
	})
	s.Require().True(res.IsSuccess(), "unexpected failure: %v", res.Err())

	address := res.Value()
	s.Equal(person.ID, address.PersonID)
	s.Equal("Keizersgracht 1", address.Line1)
	s.Equal("1015 CC", address.PostalCode)
	s.Contains(s.dispatcher.names(), "person.address_added")

	loaded := s.service.GetPersonByID(s.ctx, s.personID(person))
	s.Require().True(loaded.IsSuccess())
	s.Len(loaded.Value().Addresses, 1)
}

func (s *PersonServiceSuite) TestAddAddressUnknownCountry() {
	person := s.createPerson()

	res := s.service.AddAddress(s.ctx, s.personID(person), AddAddressInput{
		AddressTypeID: refstore.AddressTypeHomeID,
		CountryID:     "9f9e6679-7425-40de-944b-e07fc1f90ae9",
		Line1:         "Keizersgracht 1",
		City:          "Amsterdam",
	})
	s.Require().False(res.IsSuccess())
	s.True(dErrors.HasCode(res.Err(), dErrors.CodeNotFound))
}

func (s *PersonServiceSuite) TestAddAddressMalformedTypeID() {
	person := s.createPerson()

	res := s.service.AddAddress(s.ctx, s.personID(person), AddAddressInput{
		AddressTypeID: "not-a-uuid",
		CountryID:     refstore.CountryNetherlandsID,
		Line1:         "Keizersgracht 1",
		City:          "Amsterdam",
	})
	s.Require().False(res.IsSuccess())
	s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidInput))
}

func (s *PersonServiceSuite) TestAddAddressPersonNotFound() {
	res := s.service.AddAddress(s.ctx, id.NewPersonID(), AddAddressInput{
		AddressTypeID: refstore.AddressTypeHomeID,
		CountryID:     refstore.CountryNetherlandsID,
		Line1:         "Keizersgracht 1",
		City:          "Amsterdam",
	})
	s.Require().False(res.IsSuccess())
	s.True(dErrors.HasCode(res.Err(), dErrors.CodeNotFound))
}

func (s *PersonServiceSuite) TestAddPhoneNumber() {
	person := s.createPerson()

	res := s.service.AddPhoneNumber(s.ctx, s.personID(person), AddPhoneNumberInput{
		PhoneNumberTypeID: refstore.PhoneNumberTypeMobileID,
		CountryID:         refstore.CountryNetherlandsID,
		Number:            "+31 6 1234 5678",
	})
	s.Require().True(res.IsSuccess(), "unexpected failure: %v", res.Err())
	s.Equal("+31 6 1234 5678", res.Value().Number)
	s.Contains(s.dispatcher.names(), "person.phone_number_added")
}

func (s *PersonServiceSuite) TestAddEmailAddressAndGetByEmail() {
	person := s.createPerson()

	res := s.service.AddEmailAddress(s.ctx, s.personID(person), AddEmailAddressInput{
		EmailAddressTypeID: refstore.EmailAddressTypePersonalID,
		Email:              "jane.doe@example.com",
	})
	s.Require().True(res.IsSuccess(), "unexpected failure: %v", res.Err())
	s.Contains(s.dispatcher.names(), "person.email_address_added")

	byEmail := s.service.GetPersonByEmail(s.ctx, "jane.doe@example.com")
	s.Require().True(byEmail.IsSuccess())
	s.Equal(person.ID, byEmail.Value().ID)
}

func (s *PersonServiceSuite) TestGetPersonByEmailRejectsMalformedAddress() {
	res := s.service.GetPersonByEmail(s.ctx, "not-an-email")
	s.Require().False(res.IsSuccess())
	s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidInput))
}

func (s *PersonServiceSuite) TestAddGovernmentalInfoWithoutDocuments() {
	person := s.createPerson()

	// Both document numbers optional: a record naming only the country is valid.
	res := s.service.AddGovernmentalInfo(s.ctx, s.personID(person), AddGovernmentalInfoInput{
		CountryID: refstore.CountryGermanyID,
	})
	s.Require().True(res.IsSuccess(), "unexpected failure: %v", res.Err())
	s.Empty(res.Value().GovIDNumber)
	s.Contains(s.dispatcher.names(), "person.governmental_info_added")
}

func (s *PersonServiceSuite) TestSetBirthDetailsIsWriteOnce() {
	person := s.createPerson()
	personID := s.personID(person)
	birthDate := time.Date(1990, time.March, 2, 0, 0, 0, 0, time.UTC)

	first := s.service.SetBirthDetails(s.ctx, personID, SetBirthDetailsInput{
		CountryID: refstore.CountryNetherlandsID,
		BirthDate: birthDate,
		BirthCity: strPtr("Utrecht"),
	})
	s.Require().True(first.IsSuccess(), "unexpected failure: %v", first.Err())
	s.Equal("Utrecht", first.Value().BirthCity)
	s.Contains(s.dispatcher.names(), "person.birth_details_set")

	second := s.service.SetBirthDetails(s.ctx, personID, SetBirthDetailsInput{
		CountryID: refstore.CountryGermanyID,
		BirthDate: birthDate,
	})
	s.Require().False(second.IsSuccess())
	s.True(dErrors.HasCode(second.Err(), dErrors.CodeConflict))

	loaded := s.service.GetPersonByID(s.ctx, personID)
	s.Require().True(loaded.IsSuccess())
	s.Require().NotNil(loaded.Value().BirthDetails)
	s.Equal("Utrecht", loaded.Value().BirthDetails.BirthCity)
}

func (s *PersonServiceSuite) TestSetBirthDetailsFutureDateRejected() {
	person := s.createPerson()

	res := s.service.SetBirthDetails(s.ctx, s.personID(person), SetBirthDetailsInput{
		CountryID: refstore.CountryNetherlandsID,
		BirthDate: s.now.Add(24 * time.Hour),
	})
	s.Require().False(res.IsSuccess())
	s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidData))
}

func (s *PersonServiceSuite) TestListPersons() {
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		res := s.service.CreatePerson(s.ctx, CreatePersonInput{FirstName: name, LastName: "Person"})
		s.Require().True(res.IsSuccess())
	}

	page := s.service.ListPersons(s.ctx, 1, 2)
	s.Require().True(page.IsSuccess(), "unexpected failure: %v", page.Err())
	s.Len(page.Value().Items, 2)
	s.Equal(3, page.Value().Total)
	s.Equal(1, page.Value().Page)

	last := s.service.ListPersons(s.ctx, 2, 2)
	s.Require().True(last.IsSuccess())
	s.Len(last.Value().Items, 1)
}

func (s *PersonServiceSuite) TestListPersonsRejectsBadPaging() {
	for _, tc := range []struct {
		name       string
		page, size int
	}{
		{"zero page", 0, 10},
		{"zero size", 1, 0},
		{"oversized page", 1, maxPageSize + 1},
	} {
		s.Run(tc.name, func() {
			res := s.service.ListPersons(s.ctx, tc.page, tc.size)
			s.Require().False(res.IsSuccess())
			s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidInput))
		})
	}
}

type panickyStore struct {
	*personstore.InMemory
}

func (panickyStore) Count(context.Context) (int, error) {
	panic("store exploded")
}

func (s *PersonServiceSuite) TestPanickingPortBecomesInternalFailure() {
	svc := New(panickyStore{s.store}, s.refs, s.dispatcher)

	var res result.Result[int]
	s.NotPanics(func() {
		res = svc.CountPersons(s.ctx)
	})
	s.Require().False(res.IsSuccess())
	s.True(dErrors.HasCode(res.Err(), dErrors.CodeInternal))
}
