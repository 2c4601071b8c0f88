package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"connectsphere/internal/reference/models"
	id "connectsphere/pkg/domain"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "connectsphere_reference_cache_hits_total",
		Help: "Reference catalog lookups served from Redis",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "connectsphere_reference_cache_misses_total",
		Help: "Reference catalog lookups that fell through to the backing store",
	})
)

const (
	countryKeyPrefix     = "ref:country:"
	countryCodeKeyPrefix = "ref:country:code:"
	countryNameKeyPrefix = "ref:country:name:"
	countriesListKey     = "ref:countries:all"
)

// Cached is a Redis read-through decorator over a backing Store. Country
// lookups are cached as JSON snapshots with a TTL; a Redis outage degrades to
// the backing store instead of failing the request. Classification type
// lookups pass straight through: they are primary-key point reads the
// database serves as fast as the cache would.
type Cached struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
}

func NewCached(inner Store, client *redis.Client, ttl time.Duration) *Cached {
	return &Cached{inner: inner, client: client, ttl: ttl}
}

type countryDoc struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Continent  string `json:"continent,omitempty"`
	Capital    string `json:"capital,omitempty"`
	Currency   string `json:"currency,omitempty"`
	DialNumber string `json:"dial_number,omitempty"`
}

func docFromCountry(c *models.Country) countryDoc {
	d := c.Details()
	return countryDoc{
		ID:         c.ID().String(),
		Code:       d.CountryCode(),
		Name:       d.Name(),
		Continent:  d.Continent(),
		Capital:    d.Capital(),
		Currency:   d.CurrencyCode(),
		DialNumber: d.CountryDialNumber(),
	}
}

func (d countryDoc) country() (*models.Country, error) {
	countryID, err := id.ParseCountryID(d.ID)
	if err != nil {
		return nil, fmt.Errorf("cached country: %w", err)
	}
	details := models.NewCountryDetails(d.Code, d.Name, optPtr(d.Continent), optPtr(d.Capital), optPtr(d.Currency), optPtr(d.DialNumber))
	if !details.IsSuccess() {
		return nil, fmt.Errorf("cached country %s: %w", d.ID, details.Err())
	}
	res := models.ReconstructCountry(countryID, details.Value())
	if !res.IsSuccess() {
		return nil, fmt.Errorf("cached country %s: %w", d.ID, res.Err())
	}
	return res.Value(), nil
}

func (c *Cached) ListCountries(ctx context.Context) ([]*models.Country, error) {
	raw, err := c.client.Get(ctx, countriesListKey).Bytes()
	if err == nil {
		var docs []countryDoc
		if err := json.Unmarshal(raw, &docs); err == nil {
			out := make([]*models.Country, 0, len(docs))
			ok := true
			for _, d := range docs {
				country, err := d.country()
				if err != nil {
					ok = false
					break
				}
				out = append(out, country)
			}
			if ok {
				cacheHits.Inc()
				return out, nil
			}
		}
	}
	cacheMisses.Inc()

	countries, err := c.inner.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]countryDoc, 0, len(countries))
	for _, country := range countries {
		docs = append(docs, docFromCountry(country))
	}
	if raw, err := json.Marshal(docs); err == nil {
		// Best effort: a failed cache write never fails the read.
		_ = c.client.Set(ctx, countriesListKey, raw, c.ttl).Err()
	}
	return countries, nil
}

func (c *Cached) GetCountry(ctx context.Context, countryID id.CountryID) (*models.Country, error) {
	return c.cachedCountry(ctx, countryKeyPrefix+countryID.String(), func() (*models.Country, error) {
		return c.inner.GetCountry(ctx, countryID)
	})
}

func (c *Cached) GetCountryByCode(ctx context.Context, code string) (*models.Country, error) {
	// The backing lookup is case-insensitive; normalize so "de" and "DE"
	// share one cache entry.
	return c.cachedCountry(ctx, countryCodeKeyPrefix+strings.ToUpper(code), func() (*models.Country, error) {
		return c.inner.GetCountryByCode(ctx, code)
	})
}

func (c *Cached) GetCountryByName(ctx context.Context, name string) (*models.Country, error) {
	// Same normalization as the code key: the backing lookup ignores case.
	return c.cachedCountry(ctx, countryNameKeyPrefix+strings.ToLower(name), func() (*models.Country, error) {
		return c.inner.GetCountryByName(ctx, name)
	})
}

func (c *Cached) cachedCountry(ctx context.Context, key string, fetch func() (*models.Country, error)) (*models.Country, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var doc countryDoc
		if err := json.Unmarshal(raw, &doc); err == nil {
			if country, err := doc.country(); err == nil {
				cacheHits.Inc()
				return country, nil
			}
		}
	}
	cacheMisses.Inc()

	country, err := fetch()
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(docFromCountry(country)); err == nil {
		_ = c.client.Set(ctx, key, raw, c.ttl).Err()
	}
	return country, nil
}

func (c *Cached) GetPersonType(ctx context.Context, typeID id.PersonTypeID) (*models.PersonType, error) {
	return c.inner.GetPersonType(ctx, typeID)
}

func (c *Cached) GetAddressType(ctx context.Context, typeID id.AddressTypeID) (*models.AddressType, error) {
	return c.inner.GetAddressType(ctx, typeID)
}

func (c *Cached) GetPhoneNumberType(ctx context.Context, typeID id.PhoneNumberTypeID) (*models.PhoneNumberType, error) {
	return c.inner.GetPhoneNumberType(ctx, typeID)
}

func (c *Cached) GetEmailAddressType(ctx context.Context, typeID id.EmailAddressTypeID) (*models.EmailAddressType, error) {
	return c.inner.GetEmailAddressType(ctx, typeID)
}
