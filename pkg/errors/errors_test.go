package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := New("TEST", "something broke", http.StatusInternalServerError)
	require.Equal(t, "something broke", err.Error())

	wrapped := err.WithInternal(errors.New("connection refused"))
	require.Equal(t, "something broke: connection refused", wrapped.Error())
	require.Equal(t, "something broke", err.Error()) // original untouched
}

func TestWrapKeepsInternal(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, "could not fetch jobs")

	require.Equal(t, http.StatusInternalServerError, err.StatusCode)
	require.ErrorIs(t, err, cause)
}

func TestFromError(t *testing.T) {
	require.Nil(t, FromError(nil))

	appErr := NewNotFound("user not found")
	require.Equal(t, appErr, FromError(appErr))
	require.Equal(t, appErr, FromError(fmt.Errorf("handler: %w", appErr)))

	generic := FromError(errors.New("boom"))
	require.Equal(t, ErrInternalServer.Code, generic.Code)
	require.Equal(t, http.StatusInternalServerError, generic.StatusCode)
}

func TestNewValidationStatus(t *testing.T) {
	err := NewValidation("skip and limit are required")
	require.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	require.Equal(t, "skip and limit are required", err.Message)
}
