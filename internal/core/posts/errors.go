package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrPostNotFound is returned when no post exists with the requested id
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostOwner is returned when a user other than the owner attempts
	// to update or delete a post
	ErrNotPostOwner = errors.New("only the post owner may modify this post")

	// ErrPostExpired is returned when a mutation targets a post whose expiry
	// instant has passed
	ErrPostExpired = errors.New("post has expired and can no longer be modified")
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

// IsNotFound checks if error is a not-found condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}
