package users

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when no account matches the lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registration reuses an email address
	ErrEmailTaken = errors.New("email is already registered")

	// ErrUsernameTaken is returned when registration reuses a username
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrInvalidCredentials is returned on login with a wrong email or
	// password. The two cases are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
