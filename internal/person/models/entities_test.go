package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "connectsphere/pkg/domain"
	dErrors "connectsphere/pkg/domain-errors"
)

type EntitySuite struct {
	suite.Suite
	now      time.Time
	personID id.PersonID
}

func TestEntitySuite(t *testing.T) {
	suite.Run(t, new(EntitySuite))
}

func (s *EntitySuite) SetupTest() {
	s.now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	s.personID = id.NewPersonID()
}

func (s *EntitySuite) validAddress() *Address {
	details := NewAddressDetails("Main Street 1", nil, "Amsterdam", nil)
	s.Require().True(details.IsSuccess())
	res := NewAddress(id.NewAddressID(), s.personID, id.AddressTypeID(uuid.New()), details.Value(), id.CountryID(uuid.New()), s.now)
	s.Require().True(res.IsSuccess())
	return res.Value()
}

func (s *EntitySuite) TestNewAddress() {
	s.Run("valid input sets creation state", func() {
		a := s.validAddress()
		s.True(a.CreatedAt().Equal(s.now))
		s.True(a.UpdatedAt().IsZero())
		s.False(a.IsDeleted())
	})

	s.Run("empty ids are all reported", func() {
		details := NewAddressDetails("Main Street 1", nil, "Amsterdam", nil).Value()
		res := NewAddress(id.AddressID{}, id.PersonID{}, id.AddressTypeID{}, details, id.CountryID{}, s.now)
		s.Require().False(res.IsSuccess())
		s.Len(res.Errors(), 4)
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidInput))
	})

	s.Run("zero details payload fails", func() {
		res := NewAddress(id.NewAddressID(), s.personID, id.AddressTypeID(uuid.New()), AddressDetails{}, id.CountryID(uuid.New()), s.now)
		s.False(res.IsSuccess())
	})
}

func (s *EntitySuite) TestReconstructAddress() {
	created := s.now.Add(-48 * time.Hour)
	updated := s.now.Add(-24 * time.Hour)
	details := NewAddressDetails("Main Street 1", nil, "Amsterdam", nil).Value()

	res := ReconstructAddress(id.NewAddressID(), s.personID, id.AddressTypeID(uuid.New()), details, id.CountryID(uuid.New()), created, updated, true)
	s.Require().True(res.IsSuccess())
	a := res.Value()
	s.True(a.CreatedAt().Equal(created))
	s.True(a.UpdatedAt().Equal(updated))
	s.True(a.IsDeleted())
}

func (s *EntitySuite) TestAddressMutators() {
	s.Run("update details refreshes timestamp", func() {
		a := s.validAddress()
		later := s.now.Add(time.Hour)
		next := NewAddressDetails("Canal 2", nil, "Utrecht", nil).Value()

		res := a.UpdateDetails(next, later)
		s.Require().True(res.IsSuccess())
		s.Equal("Canal 2", a.Details().Line1())
		s.True(a.UpdatedAt().Equal(later))
	})

	s.Run("mutating a deleted address fails with conflict", func() {
		a := s.validAddress()
		s.Require().True(a.MarkAsDeleted(s.now).IsSuccess())

		res := a.ChangeCountry(id.CountryID(uuid.New()), s.now)
		s.Require().False(res.IsSuccess())
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeConflict))
	})

	s.Run("empty replacement country fails", func() {
		a := s.validAddress()
		s.False(a.ChangeCountry(id.CountryID{}, s.now).IsSuccess())
	})
}

func (s *EntitySuite) TestEmailAddressMutators() {
	email := NewEmail("ada@example.com").Value()
	res := NewEmailAddress(id.NewEmailAddressID(), s.personID, id.EmailAddressTypeID(uuid.New()), email, s.now)
	s.Require().True(res.IsSuccess())
	entity := res.Value()

	next := NewEmail("countess@example.com").Value()
	s.Require().True(entity.UpdateEmail(next, s.now.Add(time.Minute)).IsSuccess())
	s.Equal("countess@example.com", entity.Email().Value())

	s.False(entity.UpdateEmail(Email{}, s.now).IsSuccess())
}

func (s *EntitySuite) TestGovernmentalInfoUpdate() {
	info := NewGovernmentalInfo(id.NewGovernmentalInfoID(), s.personID, id.CountryID(uuid.New()), GovernmentalInfoDetails{}, s.now)
	s.Require().True(info.IsSuccess())

	nextCountry := id.CountryID(uuid.New())
	details := NewGovernmentalInfoDetails(strPtr("123"), nil).Value()
	res := info.Value().Update(nextCountry, details, s.now.Add(time.Minute))
	s.Require().True(res.IsSuccess())
	s.Equal(nextCountry, info.Value().CountryID())
	s.Equal("123", info.Value().Details().GovIDNumber())
}

func (s *EntitySuite) TestDeleteRestoreCycle() {
	a := s.validAddress()
	later := s.now.Add(time.Hour)

	s.Run("delete then delete again fails", func() {
		s.Require().True(a.MarkAsDeleted(later).IsSuccess())
		s.True(a.IsDeleted())
		s.True(a.UpdatedAt().Equal(later))

		res := a.MarkAsDeleted(later)
		s.Require().False(res.IsSuccess())
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeConflict))
	})

	s.Run("restore brings the entity back", func() {
		restoredAt := later.Add(time.Hour)
		s.Require().True(a.Restore(restoredAt).IsSuccess())
		s.False(a.IsDeleted())
		s.True(a.UpdatedAt().Equal(restoredAt))
	})

	s.Run("restore on an active entity fails", func() {
		res := a.Restore(later)
		s.Require().False(res.IsSuccess())
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeConflict))
	})
}

func (s *EntitySuite) TestAddressEquals() {
	details := NewAddressDetails("Main Street 1", nil, "Amsterdam", nil).Value()
	addressID := id.NewAddressID()
	typeID := id.AddressTypeID(uuid.New())
	countryID := id.CountryID(uuid.New())

	a := NewAddress(addressID, s.personID, typeID, details, countryID, s.now).Value()
	b := NewAddress(addressID, s.personID, typeID, details, countryID, s.now).Value()

	s.Run("identical fields are equal", func() {
		s.True(a.Equals(b))
	})

	s.Run("timestamps participate in equality", func() {
		c := ReconstructAddress(addressID, s.personID, typeID, details, countryID, s.now, s.now.Add(time.Second), false).Value()
		s.False(a.Equals(c))
	})

	s.Run("nil is never equal", func() {
		s.False(a.Equals(nil))
	})
}

func (s *EntitySuite) TestBirthRecordEquals() {
	birthDate := time.Date(1990, time.March, 3, 0, 0, 0, 0, time.UTC)
	details := NewBirthDetails(birthDate, strPtr("Rotterdam"), s.now).Value()
	recordID := id.NewBirthDetailsID()
	countryID := id.CountryID(uuid.New())

	a := NewPersonBirthDetails(recordID, s.personID, details, countryID, s.now).Value()
	b := NewPersonBirthDetails(recordID, s.personID, details, countryID, s.now).Value()
	s.True(a.Equals(b))

	otherDetails := NewBirthDetails(birthDate, strPtr("Delft"), s.now).Value()
	c := NewPersonBirthDetails(recordID, s.personID, otherDetails, countryID, s.now).Value()
	s.False(a.Equals(c))
}
