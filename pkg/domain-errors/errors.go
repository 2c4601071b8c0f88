// Package domainerrors defines the coded error values returned by every
// validating operation in the system.
//
// Expected failures (bad input, conflicts, missing records) are values, not
// panics: factories and services return them inside a result.Result so callers
// can branch on the code. Stores return pkg/platform/sentinel errors instead;
// services translate those into coded errors at the port boundary.
package domainerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies an error. The set is closed; transports map codes to
// statuses without inspecting messages.
type Code string

const (
	CodeInvalidInput           Code = "invalid_input"
	CodeInvalidData            Code = "invalid_data"
	CodeConflict               Code = "conflict"
	CodeNotFound               Code = "not_found"
	CodeOperationCancelled     Code = "operation_cancelled"
	CodeInternal               Code = "internal_error"
	CodeDomainValidation       Code = "domain_validation"
	CodeResourceCreationFailed Code = "resource_creation_failed"
	CodeResourceUpdateFailed   Code = "resource_update_failed"
	CodeUnauthorized           Code = "unauthorized"
)

// Error is a single coded failure. Detail and CorrelationID are optional;
// CorrelationID is stamped by the command/query handler, not by the domain.
type Error struct {
	Code          Code   `json:"code"`
	Message       string `json:"message"`
	Detail        string `json:"detail,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
	wrapped       error
}

// New constructs a coded error with a human-readable message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap converts an underlying error into a coded error, preserving the
// original as both Detail and the unwrap chain.
func Wrap(err error, code Code, message string) *Error {
	e := &Error{Code: code, Message: message, wrapped: err}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped error for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// WithDetail returns a copy carrying additional diagnostic detail.
func (e *Error) WithDetail(detail string) *Error {
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithCorrelation returns a copy stamped with the caller's correlation id.
// The original is left untouched so domain errors stay request-agnostic.
func (e *Error) WithCorrelation(correlationID string) *Error {
	clone := *e
	clone.CorrelationID = correlationID
	return &clone
}

// HasCode reports whether err is, or wraps, a coded error with the given code.
// It also looks inside a List and matches any member.
func HasCode(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) && coded.Code == code {
		return true
	}
	var list List
	if errors.As(err, &list) {
		for _, e := range list {
			if e.Code == code {
				return true
			}
		}
	}
	return false
}

// CodeOf returns the code carried by err, or CodeInternal when err carries
// none. A List reports its first member's code.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	var list List
	if errors.As(err, &list) && len(list) > 0 {
		return list[0].Code
	}
	return CodeInternal
}

// List is an ordered sequence of coded errors. Multiplicity is preserved end
// to end: a handler receiving a child failure re-tags every member with its
// own correlation id rather than collapsing the list.
type List []*Error

func (l List) Error() string {
	msgs := make([]string, 0, len(l))
	for _, e := range l {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Tagged returns a copy of the list with every member stamped with the given
// correlation id.
func (l List) Tagged(correlationID string) List {
	tagged := make(List, 0, len(l))
	for _, e := range l {
		tagged = append(tagged, e.WithCorrelation(correlationID))
	}
	return tagged
}

// ListOf normalizes an arbitrary error into a List. A nil error yields nil;
// an uncoded error is wrapped as CodeInternal so no failure loses its code.
func ListOf(err error) List {
	if err == nil {
		return nil
	}
	var list List
	if errors.As(err, &list) {
		return list
	}
	var coded *Error
	if errors.As(err, &coded) {
		return List{coded}
	}
	return List{Wrap(err, CodeInternal, "unexpected error")}
}
