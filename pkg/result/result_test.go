package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "connectsphere/pkg/domain-errors"
)

func TestSuccess(t *testing.T) {
	res := Success(42)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 42, res.Value())
	assert.Nil(t, res.Errors())
	assert.NoError(t, res.Err())
}

func TestFailure(t *testing.T) {
	res := Failure[int](dErrors.New(dErrors.CodeNotFound, "missing"))
	assert.False(t, res.IsSuccess())
	assert.Zero(t, res.Value())
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(res.Err()))
}

func TestFailureDropsNilMembers(t *testing.T) {
	res := Failure[int](nil, dErrors.New(dErrors.CodeConflict, "dup"), nil)
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, dErrors.CodeConflict, res.Errors()[0].Code)
}

func TestEmptyFailureUpgradedToInternal(t *testing.T) {
	res := Failure[int]()
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, dErrors.CodeInternal, res.Errors()[0].Code)
}

func TestZeroResultIsFailure(t *testing.T) {
	var res Result[string]
	assert.False(t, res.IsSuccess())
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, dErrors.CodeInternal, res.Errors()[0].Code)
	require.Error(t, res.Err())
	assert.True(t, dErrors.HasCode(res.Err(), dErrors.CodeInternal))
}

func TestFailureFrom(t *testing.T) {
	res := FailureFrom[int](errors.New("boom"))
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, dErrors.CodeInternal, res.Errors()[0].Code)

	coded := FailureFrom[int](dErrors.New(dErrors.CodeInvalidData, "bad"))
	assert.Equal(t, dErrors.CodeInvalidData, dErrors.CodeOf(coded.Err()))
}

func TestTagged(t *testing.T) {
	res := Failure[int](
		dErrors.New(dErrors.CodeInvalidInput, "a"),
		dErrors.New(dErrors.CodeInvalidData, "b"),
	).Tagged("corr-1")

	require.Len(t, res.Errors(), 2)
	for _, e := range res.Errors() {
		assert.Equal(t, "corr-1", e.CorrelationID)
	}

	ok := Success("v").Tagged("corr-1")
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "v", ok.Value())
}

func TestPropagate(t *testing.T) {
	child := Failure[string](
		dErrors.New(dErrors.CodeInvalidInput, "a"),
		dErrors.New(dErrors.CodeInvalidData, "b"),
	)
	parent := Propagate[int](child)

	assert.False(t, parent.IsSuccess())
	assert.Equal(t, child.Errors(), parent.Errors())
}

func TestPropagateSuccessIsInternalFailure(t *testing.T) {
	parent := Propagate[int](Success("fine"))
	require.Len(t, parent.Errors(), 1)
	assert.Equal(t, dErrors.CodeInternal, parent.Errors()[0].Code)
}
