package interaction

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Pulse/internal/core/interactions"
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
	case interactions.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case errors.Is(err, interactions.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case errors.Is(err, interactions.ErrOwnPost):
		writeError(w, http.StatusForbidden, "OwnPostInteraction",
			"Users cannot interact with their own posts")

	case errors.Is(err, interactions.ErrPostExpired):
		writeError(w, http.StatusBadRequest, "PostExpired",
			"Cannot interact with expired posts")

	default:
		log.Printf("Unexpected error in interaction handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
