// Package result provides the success/failure container used by every
// validating operation in the core. A Result is either a Success carrying a
// value or a Failure carrying one or more coded errors, never both.
package result

import (
	dErrors "connectsphere/pkg/domain-errors"
)

// Result is a tagged union: Success(value) or Failure(errors).
// The zero Result is a Failure with a single internal error, so a forgotten
// constructor can never masquerade as success.
type Result[T any] struct {
	value T
	errs  dErrors.List
	ok    bool
}

// Success wraps a value in a successful Result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure builds a failed Result from one or more coded errors. Nil members
// are dropped; an empty failure is upgraded to a single internal error so the
// one-or-more invariant always holds.
func Failure[T any](errs ...*dErrors.Error) Result[T] {
	list := make(dErrors.List, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			list = append(list, e)
		}
	}
	return FailureList[T](list)
}

// FailureList builds a failed Result from an existing error list.
func FailureList[T any](list dErrors.List) Result[T] {
	if len(list) == 0 {
		list = dErrors.List{dErrors.New(dErrors.CodeInternal, "failure constructed without errors")}
	}
	return Result[T]{errs: list}
}

// FailureFrom normalizes an arbitrary error into a failed Result.
func FailureFrom[T any](err error) Result[T] {
	return FailureList[T](dErrors.ListOf(err))
}

// IsSuccess reports whether the Result carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Value returns the carried value. Only meaningful when IsSuccess is true;
// a Failure returns the zero value.
func (r Result[T]) Value() T {
	return r.value
}

// Errors returns the ordered error list. Empty for a Success. A failure
// always yields at least one error: the zero Result, which was never built
// through a constructor, synthesizes a single internal error.
func (r Result[T]) Errors() dErrors.List {
	if r.ok {
		return nil
	}
	if len(r.errs) == 0 {
		return dErrors.List{dErrors.New(dErrors.CodeInternal, "uninitialized result")}
	}
	return r.errs
}

// Err returns the error list as a single error, or nil for a Success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.Errors()
}

// Tagged returns the Result with every error stamped with the caller's
// correlation id. A Success passes through unchanged.
func (r Result[T]) Tagged(correlationID string) Result[T] {
	if r.ok {
		return r
	}
	return Result[T]{errs: r.errs.Tagged(correlationID)}
}

// Propagate carries a failure across value types: the error list of the child
// result becomes the error list of a new Result[U]. Calling it on a success is
// a programming error and yields an internal failure.
func Propagate[U, T any](r Result[T]) Result[U] {
	return FailureList[U](r.Errors())
}
