package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "connectsphere/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("invalid input includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "first name cannot be empty"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "invalid_input" {
			t.Fatalf("expected error code invalid_input, got %q", body["error"])
		}
		if body["error_description"] != "invalid_input: first name cannot be empty" {
			t.Fatalf("unexpected error_description %q", body["error_description"])
		}
	})

	t.Run("error list surfaces first code and correlation id", func(t *testing.T) {
		list := dErrors.List{
			dErrors.New(dErrors.CodeConflict, "address with the same id already exists"),
			dErrors.New(dErrors.CodeInvalidInput, "city cannot be empty"),
		}.Tagged("corr-9")

		w := httptest.NewRecorder()
		WriteError(w, list)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["correlation_id"] != "corr-9" {
			t.Fatalf("expected correlation id corr-9, got %q", body["correlation_id"])
		}
	})
}

func TestStatusOf(t *testing.T) {
	cases := map[dErrors.Code]int{
		dErrors.CodeInvalidInput:           http.StatusBadRequest,
		dErrors.CodeInvalidData:            http.StatusUnprocessableEntity,
		dErrors.CodeDomainValidation:       http.StatusUnprocessableEntity,
		dErrors.CodeConflict:               http.StatusConflict,
		dErrors.CodeNotFound:               http.StatusNotFound,
		dErrors.CodeUnauthorized:           http.StatusUnauthorized,
		dErrors.CodeOperationCancelled:     StatusClientClosedRequest,
		dErrors.CodeInternal:               http.StatusInternalServerError,
		dErrors.CodeResourceCreationFailed: http.StatusInternalServerError,
		dErrors.CodeResourceUpdateFailed:   http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusOf(code); got != want {
			t.Errorf("StatusOf(%s) = %d, want %d", code, got, want)
		}
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"first_name":"Jane","bogus":true}`))

	var dst struct {
		FirstName string `json:"first_name"`
	}
	err := Decode(req, &dst)
	if err == nil {
		t.Fatal("expected decode error for unknown field")
	}
	if err.Code != dErrors.CodeInvalidInput {
		t.Fatalf("expected invalid_input, got %s", err.Code)
	}
}
