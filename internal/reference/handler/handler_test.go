package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connectsphere/internal/reference/service"
	refstore "connectsphere/internal/reference/store"
)

func newCatalogRouter(t *testing.T) http.Handler {
	t.Helper()
	store := refstore.NewInMemory()
	require.NoError(t, refstore.SeedDefaults(context.Background(), store))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(service.New(store, logger), logger)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListCountries(t *testing.T) {
	router := newCatalogRouter(t)

	rec := get(t, router, "/countries")
	require.Equal(t, http.StatusOK, rec.Code)

	var countries []struct {
		ID          string `json:"id"`
		CountryCode string `json:"country_code"`
		Name        string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&countries))
	require.Len(t, countries, 3)

	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Germany", "Netherlands", "United States"}, names)
}

func TestGetCountry(t *testing.T) {
	router := newCatalogRouter(t)

	rec := get(t, router, "/countries/"+refstore.CountryNetherlandsID)
	require.Equal(t, http.StatusOK, rec.Code)

	var country struct {
		ID          string `json:"id"`
		CountryCode string `json:"country_code"`
		Name        string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&country))
	assert.Equal(t, refstore.CountryNetherlandsID, country.ID)
	assert.Equal(t, "NL", country.CountryCode)
	assert.Equal(t, "Netherlands", country.Name)
}

func TestGetCountryMalformedID(t *testing.T) {
	router := newCatalogRouter(t)

	rec := get(t, router, "/countries/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCountryNotFound(t *testing.T) {
	router := newCatalogRouter(t)

	rec := get(t, router, "/countries/"+uuid.NewString())
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Error)
}

func TestGetCountryByCode(t *testing.T) {
	router := newCatalogRouter(t)

	for _, code := range []string{"DE", "de", "De"} {
		rec := get(t, router, "/countries/code/"+code)
		require.Equal(t, http.StatusOK, rec.Code, code)

		var country struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&country))
		assert.Equal(t, "Germany", country.Name)
	}
}

func TestGetCountryByCodeNotFound(t *testing.T) {
	router := newCatalogRouter(t)

	rec := get(t, router, "/countries/code/XX")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCountryByName(t *testing.T) {
	router := newCatalogRouter(t)

	for _, name := range []string{"Netherlands", "netherlands", "NETHERLANDS"} {
		rec := get(t, router, "/countries/name/"+name)
		require.Equal(t, http.StatusOK, rec.Code, name)

		var country struct {
			ID          string `json:"id"`
			CountryCode string `json:"country_code"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&country))
		assert.Equal(t, refstore.CountryNetherlandsID, country.ID)
		assert.Equal(t, "NL", country.CountryCode)
	}
}

func TestGetCountryByNameNotFound(t *testing.T) {
	router := newCatalogRouter(t)

	rec := get(t, router, "/countries/name/Atlantis")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Error)
}
