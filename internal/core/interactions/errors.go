package interactions

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound is returned when the interaction targets a post that
	// doesn't exist (or vanished between lookup and write).
	ErrPostNotFound = errors.New("post not found")

	// ErrOwnPost is returned when a user tries to like, dislike, or comment
	// on their own post.
	ErrOwnPost = errors.New("users cannot interact with their own posts")

	// ErrPostExpired is returned when the target post's expiry instant has
	// passed. Expired posts accept no further interactions.
	ErrPostExpired = errors.New("cannot interact with an expired post")
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
