package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Pulse/internal/core/users"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case errors.Is(err, users.ErrEmailTaken):
		writeError(w, http.StatusConflict, "EmailTaken", "Email is already registered")

	case errors.Is(err, users.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "UsernameTaken", "Username is already taken")

	case errors.Is(err, users.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid email or password")

	default:
		log.Printf("Unexpected error in user handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
