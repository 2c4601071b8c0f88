package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndFormat(t *testing.T) {
	err := New(CodeNotFound, "person not found")
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, "not_found: person not found", err.Error())

	withDetail := err.WithDetail("id 42")
	assert.Equal(t, "not_found: person not found (id 42)", withDetail.Error())
	// The original stays untouched.
	assert.Empty(t, err.Detail)
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "size must be between 1 and %d", 100)
	assert.Equal(t, "invalid_input: size must be between 1 and 100", err.Error())
}

func TestWrapPreservesChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to load person")

	assert.Equal(t, "connection refused", err.Detail)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("outer: %w", err), cause)
}

func TestWithCorrelationCopies(t *testing.T) {
	err := New(CodeConflict, "person already exists")
	tagged := err.WithCorrelation("corr-1")

	assert.Equal(t, "corr-1", tagged.CorrelationID)
	assert.Empty(t, err.CorrelationID)
}

func TestHasCode(t *testing.T) {
	err := New(CodeConflict, "person already exists")
	assert.True(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(err, CodeNotFound))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, HasCode(wrapped, CodeConflict))

	list := List{New(CodeInvalidInput, "a"), New(CodeInvalidData, "b")}
	assert.True(t, HasCode(list, CodeInvalidData))
	assert.False(t, HasCode(list, CodeConflict))

	assert.False(t, HasCode(errors.New("plain"), CodeInternal))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(New(CodeNotFound, "x")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))

	// A list reports its first member's code.
	list := List{New(CodeConflict, "a"), New(CodeNotFound, "b")}
	assert.Equal(t, CodeConflict, CodeOf(list))
}

func TestListErrorJoins(t *testing.T) {
	list := List{New(CodeInvalidInput, "first"), New(CodeInvalidData, "second")}
	assert.Equal(t, "invalid_input: first; invalid_data: second", list.Error())
}

func TestListTagged(t *testing.T) {
	list := List{New(CodeInvalidInput, "a"), New(CodeInvalidData, "b")}
	tagged := list.Tagged("corr-7")

	require.Len(t, tagged, 2)
	for _, e := range tagged {
		assert.Equal(t, "corr-7", e.CorrelationID)
	}
	for _, e := range list {
		assert.Empty(t, e.CorrelationID)
	}
}

func TestListOf(t *testing.T) {
	assert.Nil(t, ListOf(nil))

	coded := New(CodeNotFound, "x")
	require.Len(t, ListOf(coded), 1)
	assert.Same(t, coded, ListOf(coded)[0])

	list := List{coded}
	assert.Equal(t, list, ListOf(list))

	plain := ListOf(errors.New("boom"))
	require.Len(t, plain, 1)
	assert.Equal(t, CodeInternal, plain[0].Code)
	assert.Equal(t, "boom", plain[0].Detail)
}
