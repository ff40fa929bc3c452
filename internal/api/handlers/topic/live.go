package topic

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Pulse/internal/core/topics"
)

// LiveHandler lists live posts for a topic
type LiveHandler struct {
	service topics.Service
}

// NewLiveHandler creates a new live-list handler
func NewLiveHandler(service topics.Service) *LiveHandler {
	return &LiveHandler{service: service}
}

// HandleLive handles GET /api/posts/topic/{topic}
func (h *LiveHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListLiveByTopic(r.Context(), chi.URLParam(r, "topic"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		log.Printf("Failed to encode live topic response: %v", err)
	}
}
