package models

import (
	"strings"
	"unicode/utf8"

	dErrors "connectsphere/pkg/domain-errors"
)

// requireString validates a mandatory string field and returns the trimmed
// value. Limits are in characters, not bytes.
func requireString(field, value string, max int) (string, *dErrors.Error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", field)
	}
	if utf8.RuneCountInString(trimmed) > max {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot exceed %d characters", field, max)
	}
	return trimmed, nil
}

// optionalString validates an optional field and returns the trimmed value.
// A nil pointer means the field was not supplied and maps to the empty
// string. A supplied value must be non-blank and within max; "present but
// blank" is an input error rather than an absence.
func optionalString(field string, value *string, max int) (string, *dErrors.Error) {
	if value == nil {
		return "", nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty if provided", field)
	}
	if utf8.RuneCountInString(trimmed) > max {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot exceed %d characters", field, max)
	}
	return trimmed, nil
}
