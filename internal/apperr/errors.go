package apperr

import (
	"errors"
	"net/http"
)

// Error is a request-level failure with a fixed HTTP status. Services return
// these (possibly wrapped); the handler boundary maps them onto the JSON
// error envelope.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

var (
	ErrEmailTaken         = New(http.StatusBadRequest, "EMAIL_TAKEN", "User already exists")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	ErrAuthRequired       = New(http.StatusUnauthorized, "AUTH_REQUIRED", "Access denied. No token provided.")
	ErrInvalidToken       = New(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
	ErrForbidden          = New(http.StatusForbidden, "FORBIDDEN", "Access denied. You do not have permission.")
	ErrUserNotFound       = New(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrProfileNotFound    = New(http.StatusNotFound, "PROFILE_NOT_FOUND", "Professional profile not found.")
	ErrProfileExists      = New(http.StatusBadRequest, "PROFILE_EXISTS", "Professional profile already exists for this user.")
	ErrResetToken         = New(http.StatusBadRequest, "INVALID_RESET_TOKEN", "Invalid or expired reset token")
	ErrInternal           = New(http.StatusInternalServerError, "INTERNAL", "Internal server error")
)

// Validation builds a 400 with a caller-supplied message, e.g. which required
// field is missing.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, "VALIDATION", message)
}

// Upstream marks a failed call to a dependent service.
func Upstream(message string) *Error {
	return New(http.StatusBadGateway, "UPSTREAM", message)
}

// From unwraps err to an *Error if one is in the chain.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
