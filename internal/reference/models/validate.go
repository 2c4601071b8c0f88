package models

import (
	"strings"
	"unicode/utf8"

	dErrors "connectsphere/pkg/domain-errors"
)

// Both helpers return the trimmed value; limits are in characters, not bytes.

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
