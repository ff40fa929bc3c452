package topic

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Pulse/internal/core/topics"
)

// MostActiveHandler returns the highest-engagement live post for a topic
type MostActiveHandler struct {
	service topics.Service
}

// NewMostActiveHandler creates a new most-active handler
func NewMostActiveHandler(service topics.Service) *MostActiveHandler {
	return &MostActiveHandler{service: service}
}

// HandleMostActive handles GET /api/posts/topic/{topic}/most-active
func (h *MostActiveHandler) HandleMostActive(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.MostActiveByTopic(r.Context(), chi.URLParam(r, "topic"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("Failed to encode most active response: %v", err)
	}
}
