package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("record %s", "x")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrapped: %w", Conflict("taken"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", PreconditionFailed("steps remaining"))

	assert.True(t, errors.Is(err, PreconditionFailed("")))
	assert.False(t, errors.Is(err, Conflict("")))
	assert.True(t, IsKind(err, KindPreconditionFailed))
	assert.False(t, IsKind(nil, KindPreconditionFailed))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause, "load record")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "load record", err.Message)
}

func TestValidationFields(t *testing.T) {
	err := Validation(map[string][]string{"email": {"required"}})

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, []string{"required"}, err.Fields["email"])
	assert.NotNil(t, Validation(nil).Fields)
}
