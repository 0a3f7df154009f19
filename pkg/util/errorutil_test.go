package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"validation", NewValidationError("No data provided", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"not found", NewNotFound("Applicant", nil), "NOT_FOUND", http.StatusNotFound},
		{"creation", NewCreationFailed("applicants", nil), "CREATION_FAILED", http.StatusInternalServerError},
		{"store", NewStoreError(errors.New("boom")), "STORE_ERROR", http.StatusInternalServerError},
		{"rate limited", NewRateLimited("too many requests"), "RATE_LIMITED", http.StatusTooManyRequests},
		{"internal", NewInternalError(nil), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var de *DomainError
			require.ErrorAs(t, tc.err, &de)
			assert.Equal(t, tc.code, de.Code)
			assert.Equal(t, tc.status, de.HTTPStatus)
			assert.NotEmpty(t, de.Message)
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	var de *DomainError
	require.ErrorAs(t, NewNotFound("Applicant", nil), &de)
	assert.Equal(t, "Applicant not found", de.Message)
}

func TestDomainErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "record store request failed: connection refused", err.Error())

	bare := &DomainError{Code: "X", Message: "just a message"}
	assert.Equal(t, "just a message", bare.Error())
}

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	original := NewValidationError("Invalid client id", nil)
	assert.Same(t, original, ToDomainError(original))

	// a DomainError buried in a wrap chain keeps its classification
	deep := fmt.Errorf("handler: %w", NewNotFound("Client", nil))
	assert.Equal(t, "NOT_FOUND", ToDomainError(deep).Code)

	plain := errors.New("kaboom")
	wrapped := ToDomainError(plain)
	require.NotNil(t, wrapped)
	assert.Equal(t, "INTERNAL_ERROR", wrapped.Code)
	assert.Equal(t, "internal server error", wrapped.Message)
	assert.ErrorIs(t, wrapped, plain)
}
