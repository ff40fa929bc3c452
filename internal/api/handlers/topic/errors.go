package topic

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Pulse/internal/core/posts"
	"Pulse/internal/core/topics"
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
	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case errors.Is(err, topics.ErrNoExpiredPosts):
		writeError(w, http.StatusNotFound, "NoExpiredPosts",
			"No expired posts found for this topic")

	case errors.Is(err, topics.ErrNoLivePosts):
		writeError(w, http.StatusNotFound, "NoLivePosts",
			"No live posts found for this topic")

	default:
		log.Printf("Unexpected error in topic handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
