package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrInternal.Code, ErrInternal.Status, "failed to load user")

	assert.Equal(t, "failed to load user: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFromErrorUnwrapsNested(t *testing.T) {
	inner := Clone(ErrNotFound, "course not found")
	wrapped := fmt.Errorf("handler: %w", inner)

	resolved := FromError(wrapped)
	require.NotNil(t, resolved)
	assert.Equal(t, http.StatusNotFound, resolved.Status)
	assert.Equal(t, "course not found", resolved.Message)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	resolved := FromError(errors.New("boom"))
	require.NotNil(t, resolved)
	assert.Equal(t, http.StatusInternalServerError, resolved.Status)
	assert.Equal(t, ErrInternal.Code, resolved.Code)
}

func TestFromErrorNil(t *testing.T) {
	assert.Nil(t, FromError(nil))
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrConflict, "student already enrolled")
	assert.Equal(t, "student already enrolled", clone.Message)
	assert.Equal(t, "conflict", ErrConflict.Message)
	assert.Equal(t, ErrConflict.Status, clone.Status)

	kept := Clone(ErrConflict, "")
	assert.Equal(t, ErrConflict.Message, kept.Message)
}
