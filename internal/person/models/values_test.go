package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "connectsphere/pkg/domain-errors"
)

type ValueObjectSuite struct {
	suite.Suite
	now time.Time
}

func TestValueObjectSuite(t *testing.T) {
	suite.Run(t, new(ValueObjectSuite))
}

func (s *ValueObjectSuite) SetupTest() {
	s.now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func strPtr(v string) *string { return &v }

func (s *ValueObjectSuite) TestNewPersonName() {
	s.Run("valid full name succeeds", func() {
		res := NewPersonName("Ada", strPtr("King"), "Lovelace", strPtr("Countess"), strPtr("Jr"))
		s.Require().True(res.IsSuccess())
		name := res.Value()
		s.Equal("Ada", name.FirstName())
		s.Equal("King", name.MiddleName())
		s.Equal("Lovelace", name.LastName())
		s.Equal("Countess", name.Title())
		s.Equal("Jr", name.Suffix())
	})

	s.Run("optional parts may be absent", func() {
		res := NewPersonName("Ada", nil, "Lovelace", nil, nil)
		s.Require().True(res.IsSuccess())
		s.Empty(res.Value().MiddleName())
		s.Empty(res.Value().Title())
		s.Empty(res.Value().Suffix())
	})

	s.Run("blank first name fails", func() {
		res := NewPersonName("   ", nil, "Lovelace", nil, nil)
		s.Require().False(res.IsSuccess())
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidInput))
	})

	s.Run("blank last name fails", func() {
		res := NewPersonName("Ada", nil, "", nil, nil)
		s.False(res.IsSuccess())
	})

	s.Run("first name over 50 chars fails", func() {
		res := NewPersonName(strings.Repeat("a", 51), nil, "Lovelace", nil, nil)
		s.Require().False(res.IsSuccess())
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidInput))
	})

	s.Run("provided-but-blank title fails", func() {
		res := NewPersonName("Ada", nil, "Lovelace", strPtr("  "), nil)
		s.Require().False(res.IsSuccess())
		s.Contains(res.Err().Error(), "title")
	})

	s.Run("fifty char parts are accepted at the boundary", func() {
		exact := strings.Repeat("x", 50)
		res := NewPersonName(exact, strPtr(exact), exact, nil, nil)
		s.True(res.IsSuccess())
	})

	s.Run("limits count characters not bytes", func() {
		// 50 CJK characters, 150 bytes.
		exact := strings.Repeat("李", 50)
		res := NewPersonName(exact, nil, exact, nil, nil)
		s.Require().True(res.IsSuccess())
		s.Equal(exact, res.Value().FirstName())
		s.False(NewPersonName(strings.Repeat("李", 51), nil, "Doe", nil, nil).IsSuccess())
	})

	s.Run("parts are stored trimmed", func() {
		res := NewPersonName(" Ada ", strPtr(" King "), " Lovelace ", nil, nil)
		s.Require().True(res.IsSuccess())
		s.Equal("Ada", res.Value().FirstName())
		s.Equal("King", res.Value().MiddleName())
		s.Equal("Lovelace", res.Value().LastName())
	})
}

func (s *ValueObjectSuite) TestPersonNameFull() {
	res := NewPersonName("Ada", nil, "Lovelace", strPtr("Countess"), nil)
	s.Require().True(res.IsSuccess())
	s.Equal("Countess Ada Lovelace", res.Value().Full())
}

func (s *ValueObjectSuite) TestNewEmail() {
	s.Run("valid address succeeds", func() {
		res := NewEmail("ada@example.com")
		s.Require().True(res.IsSuccess())
		s.Equal("ada@example.com", res.Value().Value())
	})

	s.Run("empty address fails", func() {
		s.False(NewEmail("").IsSuccess())
	})

	s.Run("address over 100 chars fails", func() {
		long := strings.Repeat("a", 95) + "@b.com"
		s.False(NewEmail(long).IsSuccess())
	})

	s.Run("missing at sign fails", func() {
		s.False(NewEmail("ada.example.com").IsSuccess())
	})

	s.Run("missing tld fails", func() {
		s.False(NewEmail("ada@example").IsSuccess())
	})

	s.Run("dot at domain edge fails", func() {
		s.False(NewEmail("ada@.com").IsSuccess())
		s.False(NewEmail("ada@example.").IsSuccess())
	})

	s.Run("empty local part fails", func() {
		s.False(NewEmail("@example.com").IsSuccess())
	})

	s.Run("surrounding whitespace is trimmed", func() {
		res := NewEmail("  ada@example.com ")
		s.Require().True(res.IsSuccess())
		s.Equal("ada@example.com", res.Value().Value())
	})
}

func (s *ValueObjectSuite) TestNewPhoneNumberValue() {
	s.Run("valid number succeeds", func() {
		res := NewPhoneNumberValue("+31 6 1234 5678")
		s.Require().True(res.IsSuccess())
		s.Equal("+31 6 1234 5678", res.Value().Number())
	})

	s.Run("blank number fails", func() {
		s.False(NewPhoneNumberValue(" ").IsSuccess())
	})

	s.Run("number over 25 chars fails", func() {
		s.False(NewPhoneNumberValue(strings.Repeat("1", 26)).IsSuccess())
	})
}

func (s *ValueObjectSuite) TestNewAddressDetails() {
	s.Run("valid address succeeds and trims", func() {
		res := NewAddressDetails(" Main Street 1 ", strPtr("Suite 4"), " Amsterdam ", strPtr("1011 AB"))
		s.Require().True(res.IsSuccess())
		a := res.Value()
		s.Equal("Main Street 1", a.Line1())
		s.Equal("Suite 4", a.Line2())
		s.Equal("Amsterdam", a.City())
		s.Equal("1011 AB", a.PostalCode())
	})

	s.Run("optional fields may be absent", func() {
		res := NewAddressDetails("Main Street 1", nil, "Amsterdam", nil)
		s.Require().True(res.IsSuccess())
		s.Empty(res.Value().Line2())
		s.Empty(res.Value().PostalCode())
	})

	s.Run("missing line1 fails", func() {
		s.False(NewAddressDetails("", nil, "Amsterdam", nil).IsSuccess())
	})

	s.Run("missing city fails", func() {
		s.False(NewAddressDetails("Main Street 1", nil, "  ", nil).IsSuccess())
	})

	s.Run("line1 over 100 chars fails", func() {
		s.False(NewAddressDetails(strings.Repeat("x", 101), nil, "Amsterdam", nil).IsSuccess())
	})

	s.Run("city limit counts characters not bytes", func() {
		s.True(NewAddressDetails("Main Street 1", nil, strings.Repeat("ß", 100), nil).IsSuccess())
		s.False(NewAddressDetails("Main Street 1", nil, strings.Repeat("ß", 101), nil).IsSuccess())
	})

	s.Run("postal code over 20 chars fails", func() {
		s.False(NewAddressDetails("Main Street 1", nil, "Amsterdam", strPtr(strings.Repeat("1", 21))).IsSuccess())
	})
}

func (s *ValueObjectSuite) TestNewBirthDetails() {
	s.Run("valid birth date succeeds", func() {
		date := time.Date(1990, time.March, 3, 0, 0, 0, 0, time.UTC)
		res := NewBirthDetails(date, strPtr("Rotterdam"), s.now)
		s.Require().True(res.IsSuccess())
		s.True(res.Value().BirthDate().Equal(date))
		s.Equal("Rotterdam", res.Value().BirthCity())
	})

	s.Run("future birth date fails with invalid data", func() {
		res := NewBirthDetails(s.now.Add(24*time.Hour), nil, s.now)
		s.Require().False(res.IsSuccess())
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidData))
	})

	s.Run("birth date before 1900 fails with invalid data", func() {
		res := NewBirthDetails(time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC), nil, s.now)
		s.Require().False(res.IsSuccess())
		s.True(dErrors.HasCode(res.Err(), dErrors.CodeInvalidData))
	})

	s.Run("exactly 1900-01-01 is accepted", func() {
		res := NewBirthDetails(time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC), nil, s.now)
		s.True(res.IsSuccess())
	})

	s.Run("zero birth date fails", func() {
		s.False(NewBirthDetails(time.Time{}, nil, s.now).IsSuccess())
	})

	s.Run("birth city over 100 chars fails", func() {
		res := NewBirthDetails(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), strPtr(strings.Repeat("c", 101)), s.now)
		s.False(res.IsSuccess())
	})
}

func (s *ValueObjectSuite) TestNewGovernmentalInfoDetails() {
	s.Run("both fields absent is valid", func() {
		res := NewGovernmentalInfoDetails(nil, nil)
		s.Require().True(res.IsSuccess())
		s.True(res.Value().IsZero())
	})

	s.Run("values are stored trimmed", func() {
		res := NewGovernmentalInfoDetails(strPtr(" 123456789 "), strPtr("NL99PASS"))
		s.Require().True(res.IsSuccess())
		s.Equal("123456789", res.Value().GovIDNumber())
		s.Equal("NL99PASS", res.Value().PassportNumber())
	})

	s.Run("provided-but-blank gov id fails", func() {
		s.False(NewGovernmentalInfoDetails(strPtr("  "), nil).IsSuccess())
	})

	s.Run("passport over 50 chars fails", func() {
		s.False(NewGovernmentalInfoDetails(nil, strPtr(strings.Repeat("p", 51))).IsSuccess())
	})
}
