// Package models holds the person aggregate and its building blocks: the
// self-validating value objects, the identity-bearing child entities, and the
// domain events recorded by successful mutations.
//
// Domain purity: this package performs no I/O, takes no context.Context, and
// never calls time.Now(). Time is always received as a parameter from the
// application layer (requestcontext.Now), so construction and mutation are
// deterministic under test.
//
// Every validating operation returns a result.Result instead of a panic or a
// bare error: a Success carries the constructed or mutated value, a Failure
// carries one or more coded errors. No partial object ever escapes a failed
// factory.
package models
