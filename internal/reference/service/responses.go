package service

import (
	"connectsphere/internal/reference/models"
)

// CountryResponse is the wire shape of one catalog country. Optional catalog
// columns surface as omitted keys.
type CountryResponse struct {
	ID                string `json:"id"`
	CountryCode       string `json:"country_code"`
	Name              string `json:"name"`
	Continent         string `json:"continent,omitempty"`
	Capital           string `json:"capital,omitempty"`
	CurrencyCode      string `json:"currency_code,omitempty"`
	CountryDialNumber string `json:"country_dial_number,omitempty"`
}

func countryResponse(c *models.Country) CountryResponse {
	d := c.Details()
	return CountryResponse{
		ID:                c.ID().String(),
		CountryCode:       d.CountryCode(),
		Name:              d.Name(),
		Continent:         d.Continent(),
		Capital:           d.Capital(),
		CurrencyCode:      d.CurrencyCode(),
		CountryDialNumber: d.CountryDialNumber(),
	}
}
