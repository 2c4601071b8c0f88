// Package httputil maps service results onto HTTP responses. The error body
// follows the {"error", "error_description"} convention; 5xx responses omit
// the description so internal details never leak to clients.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "connectsphere/pkg/domain-errors"
)

// StatusClientClosedRequest mirrors nginx's non-standard code for requests
// abandoned by the client.
const StatusClientClosedRequest = 499

type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	CorrelationID    string `json:"correlation_id,omitempty"`
}

// WriteJSON serializes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a coded error (or error list) to a status and error body.
// An unknown error is treated as internal.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := StatusOf(code)

	body := errorBody{Error: string(code)}
	if status < http.StatusInternalServerError {
		body.ErrorDescription = err.Error()
	}
	var coded *dErrors.Error
	var list dErrors.List
	switch {
	case errors.As(err, &coded):
		body.CorrelationID = coded.CorrelationID
	case errors.As(err, &list) && len(list) > 0:
		body.CorrelationID = list[0].CorrelationID
	}

	WriteJSON(w, status, body)
}

// StatusOf translates an error code into an HTTP status.
func StatusOf(code dErrors.Code) int {
	switch code {
	case dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeInvalidData, dErrors.CodeDomainValidation:
		return http.StatusUnprocessableEntity
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeOperationCancelled:
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads the JSON request body into dst, rejecting unknown fields.
func Decode(r *http.Request, dst any) *dErrors.Error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid request body")
	}
	return nil
}
