package handler

import (
	"bytes"
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

	"connectsphere/internal/person/models"
	"connectsphere/internal/person/service"
	personstore "connectsphere/internal/person/store/person"
	refstore "connectsphere/internal/reference/store"
)

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(context.Context, models.Event) error { return nil }

func newPersonRouter(t *testing.T) http.Handler {
	t.Helper()
	persons := personstore.NewInMemory()
	refs := refstore.NewInMemory()
	require.NoError(t, refstore.SeedDefaults(context.Background(), refs))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(persons, refs, noopDispatcher{}, service.WithLogger(logger))

	h := New(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

func createTestPerson(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/persons", map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestCreateAndGetPerson(t *testing.T) {
	router := newPersonRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/persons", map[string]any{
		"first_name":  "Jane",
		"middle_name": "Q",
		"last_name":   "Doe",
		"title":       "Dr.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID   string `json:"id"`
		Name struct {
			FirstName string `json:"first_name"`
			FullName  string `json:"full_name"`
		} `json:"name"`
		CreatedAt string `json:"created_at"`
	}
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Jane", created.Name.FirstName)
	assert.Equal(t, "Dr. Jane Q Doe", created.Name.FullName)
	assert.NotEmpty(t, created.CreatedAt)

	getRec := doJSON(t, router, http.MethodGet, "/persons/"+created.ID, nil)
	require.Equal(t, http.StatusOK, getRec.Code)

	var fetched struct {
		ID string `json:"id"`
	}
	decodeBody(t, getRec, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestCreatePersonValidationFailure(t *testing.T) {
	router := newPersonRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/persons", map[string]any{
		"first_name": "",
		"last_name":  "Doe",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "invalid_input", body.Error)
	assert.NotEmpty(t, body.ErrorDescription)
}

func TestCreatePersonRejectsUnknownFields(t *testing.T) {
	router := newPersonRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/persons", map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
		"nickname":   "JD",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPersonMalformedID(t *testing.T) {
	router := newPersonRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/persons/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPersonNotFound(t *testing.T) {
	router := newPersonRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/persons/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "not_found", body.Error)
}

func TestUpdatePersonName(t *testing.T) {
	router := newPersonRouter(t)
	personID := createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodPut, "/persons/"+personID+"/name", map[string]any{
		"first_name": "Janet",
		"last_name":  "Doe",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		Name struct {
			FullName string `json:"full_name"`
		} `json:"name"`
		UpdatedAt *string `json:"updated_at"`
	}
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Janet Doe", updated.Name.FullName)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestDeletePerson(t *testing.T) {
	router := newPersonRouter(t)
	personID := createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodDelete, "/persons/"+personID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	getRec := doJSON(t, router, http.MethodGet, "/persons/"+personID, nil)
	assert.Equal(t, http.StatusNotFound, getRec.Code)

	again := doJSON(t, router, http.MethodDelete, "/persons/"+personID, nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestAddAddress(t *testing.T) {
	router := newPersonRouter(t)
	personID := createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodPost, "/persons/"+personID+"/addresses", map[string]any{
		"address_type_id": refstore.AddressTypeHomeID,
		"country_id":      refstore.CountryNetherlandsID,
		"line1":           "Keizersgracht 1",
		"city":            "Amsterdam",
		"postal_code":     "1015 CD",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var address struct {
		ID       string `json:"id"`
		PersonID string `json:"person_id"`
		City     string `json:"city"`
	}
	decodeBody(t, rec, &address)
	assert.NotEmpty(t, address.ID)
	assert.Equal(t, personID, address.PersonID)
	assert.Equal(t, "Amsterdam", address.City)

	getRec := doJSON(t, router, http.MethodGet, "/persons/"+personID, nil)
	require.Equal(t, http.StatusOK, getRec.Code)
	var person struct {
		Addresses []json.RawMessage `json:"addresses"`
	}
	decodeBody(t, getRec, &person)
	assert.Len(t, person.Addresses, 1)
}

func TestAddAddressUnknownCountry(t *testing.T) {
	router := newPersonRouter(t)
	personID := createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodPost, "/persons/"+personID+"/addresses", map[string]any{
		"address_type_id": refstore.AddressTypeHomeID,
		"country_id":      uuid.NewString(),
		"line1":           "Keizersgracht 1",
		"city":            "Amsterdam",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddPhoneNumber(t *testing.T) {
	router := newPersonRouter(t)
	personID := createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodPost, "/persons/"+personID+"/phone-numbers", map[string]any{
		"phone_number_type_id": refstore.PhoneNumberTypeMobileID,
		"country_id":           refstore.CountryNetherlandsID,
		"number":               "+31612345678",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var phone struct {
		Number string `json:"number"`
	}
	decodeBody(t, rec, &phone)
	assert.Equal(t, "+31612345678", phone.Number)
}

func TestAddEmailAddressAndLookup(t *testing.T) {
	router := newPersonRouter(t)
	personID := createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodPost, "/persons/"+personID+"/email-addresses", map[string]any{
		"email_address_type_id": refstore.EmailAddressTypePersonalID,
		"email":                 "jane@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	lookupRec := doJSON(t, router, http.MethodGet, "/persons/by-email?email=jane%40example.com", nil)
	require.Equal(t, http.StatusOK, lookupRec.Code)

	var person struct {
		ID string `json:"id"`
	}
	decodeBody(t, lookupRec, &person)
	assert.Equal(t, personID, person.ID)
}

func TestGetPersonByEmailRequiresQuery(t *testing.T) {
	router := newPersonRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/persons/by-email", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddGovernmentalInfo(t *testing.T) {
	router := newPersonRouter(t)
	personID := createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodPost, "/persons/"+personID+"/governmental-infos", map[string]any{
		"country_id":      refstore.CountryNetherlandsID,
		"passport_number": "NX1234567",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var info struct {
		PassportNumber *string `json:"passport_number"`
	}
	decodeBody(t, rec, &info)
	require.NotNil(t, info.PassportNumber)
	assert.Equal(t, "NX1234567", *info.PassportNumber)
}

func TestSetBirthDetails(t *testing.T) {
	router := newPersonRouter(t)
	personID := createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodPost, "/persons/"+personID+"/birth-details", map[string]any{
		"country_id": refstore.CountryNetherlandsID,
		"birth_date": "1990-04-12",
		"birth_city": "Utrecht",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Write-once: a second submission conflicts.
	again := doJSON(t, router, http.MethodPost, "/persons/"+personID+"/birth-details", map[string]any{
		"country_id": refstore.CountryNetherlandsID,
		"birth_date": "1991-01-01",
	})
	assert.Equal(t, http.StatusConflict, again.Code)
}

func TestSetBirthDetailsBadDate(t *testing.T) {
	router := newPersonRouter(t)
	personID := createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodPost, "/persons/"+personID+"/birth-details", map[string]any{
		"country_id": refstore.CountryNetherlandsID,
		"birth_date": "12/04/1990",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		ErrorDescription string `json:"error_description"`
	}
	decodeBody(t, rec, &body)
	assert.Contains(t, body.ErrorDescription, "YYYY-MM-DD")
}

func TestListPersons(t *testing.T) {
	router := newPersonRouter(t)
	for range 3 {
		createTestPerson(t, router)
	}

	rec := doJSON(t, router, http.MethodGet, "/persons?page=1&size=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Items []json.RawMessage `json:"items"`
		Page  int               `json:"page"`
		Size  int               `json:"size"`
		Total int               `json:"total"`
	}
	decodeBody(t, rec, &list)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 2, list.Size)
	assert.Equal(t, 3, list.Total)
}

func TestListPersonsDefaults(t *testing.T) {
	router := newPersonRouter(t)
	createTestPerson(t, router)

	rec := doJSON(t, router, http.MethodGet, "/persons", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Page int `json:"page"`
		Size int `json:"size"`
	}
	decodeBody(t, rec, &list)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, defaultPageSize, list.Size)
}

func TestListPersonsBadPaging(t *testing.T) {
	router := newPersonRouter(t)

	for _, path := range []string{
		"/persons?page=abc",
		"/persons?page=0",
		"/persons?size=0",
		"/persons?size=1000",
	} {
		rec := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}
