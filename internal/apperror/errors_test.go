package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrStorage(cause)

	assert.Equal(t, "[STO_001] Local storage error: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAppError_ErrorWithoutCause(t *testing.T) {
	assert.Equal(t, "[VAL_003] Invalid UPI ID format", ErrInvalidUPI().Error())
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("setup: %w", ErrMissingFields())

	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(err, KindExternal))
	assert.False(t, IsKind(errors.New("plain"), KindValidation))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Please fill all fields", Message(fmt.Errorf("wrap: %w", ErrMissingFields())))
	assert.Equal(t, "plain", Message(errors.New("plain")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "external", KindExternal.String())
	assert.Equal(t, "storage", KindStorage.String())
	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
