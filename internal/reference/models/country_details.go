package models

import (
	"encoding/json"

	"connectsphere/pkg/result"
)

const (
	maxCountryCodeLength  = 10
	maxCountryFieldLength = 100
)

// CountryDetails is the descriptive metadata of a country: ISO code and name
// are required, the rest is optional reference data.
type CountryDetails struct {
	countryCode       string
	name              string
	continent         string
	capital           string
	currencyCode      string
	countryDialNumber string
}

func NewCountryDetails(countryCode, name string, continent, capital, currencyCode, countryDialNumber *string) result.Result[CountryDetails] {
	code, err := requireString("country code", countryCode, maxCountryCodeLength)
	if err != nil {
		return result.Failure[CountryDetails](err)
	}
	nameVal, err := requireString("country name", name, maxCountryFieldLength)
	if err != nil {
		return result.Failure[CountryDetails](err)
	}
	continentVal, err := optionalString("continent", continent, maxCountryFieldLength)
	if err != nil {
		return result.Failure[CountryDetails](err)
	}
	capitalVal, err := optionalString("capital", capital, maxCountryFieldLength)
	if err != nil {
		return result.Failure[CountryDetails](err)
	}
	currency, err := optionalString("currency code", currencyCode, maxCountryCodeLength)
	if err != nil {
		return result.Failure[CountryDetails](err)
	}
	dial, err := optionalString("country dial number", countryDialNumber, maxCountryCodeLength)
	if err != nil {
		return result.Failure[CountryDetails](err)
	}
	return result.Success(CountryDetails{
		countryCode:       code,
		name:              nameVal,
		continent:         continentVal,
		capital:           capitalVal,
		currencyCode:      currency,
		countryDialNumber: dial,
	})
}

func (c CountryDetails) CountryCode() string       { return c.countryCode }
func (c CountryDetails) Name() string              { return c.name }
func (c CountryDetails) Continent() string         { return c.continent }
func (c CountryDetails) Capital() string           { return c.capital }
func (c CountryDetails) CurrencyCode() string      { return c.currencyCode }
func (c CountryDetails) CountryDialNumber() string { return c.countryDialNumber }

func (c CountryDetails) IsZero() bool { return c == CountryDetails{} }

func (c CountryDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CountryCode       string `json:"country_code"`
		Name              string `json:"name"`
		Continent         string `json:"continent,omitempty"`
		Capital           string `json:"capital,omitempty"`
		CurrencyCode      string `json:"currency_code,omitempty"`
		CountryDialNumber string `json:"country_dial_number,omitempty"`
	}{c.countryCode, c.name, c.continent, c.capital, c.currencyCode, c.countryDialNumber})
}
