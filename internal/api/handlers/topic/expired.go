package topic

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Pulse/internal/core/topics"
)

// ExpiredHandler lists expired posts for a topic
type ExpiredHandler struct {
	service topics.Service
}

// NewExpiredHandler creates a new expired-list handler
func NewExpiredHandler(service topics.Service) *ExpiredHandler {
	return &ExpiredHandler{service: service}
}

// HandleExpired handles GET /api/posts/topic/{topic}/expired
// A topic with no expired posts is a 404, not an empty list.
func (h *ExpiredHandler) HandleExpired(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListExpiredByTopic(r.Context(), chi.URLParam(r, "topic"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		log.Printf("Failed to encode expired topic response: %v", err)
	}
}
