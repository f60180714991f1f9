package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", ErrInvalidCredentials)

	appErr, ok := From(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestFromRejectsPlainErrors(t *testing.T) {
	_, ok := From(errors.New("disk full"))
	assert.False(t, ok)
}

func TestValidationAndUpstream(t *testing.T) {
	v := Validation("Profession is required")
	assert.Equal(t, http.StatusBadRequest, v.Status)
	assert.Equal(t, "VALIDATION", v.Code)
	assert.Equal(t, "Profession is required", v.Message)

	u := Upstream("Could not create professional profile")
	assert.Equal(t, http.StatusBadGateway, u.Status)
	assert.Equal(t, "UPSTREAM", u.Code)
}
