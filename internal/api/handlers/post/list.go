package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Pulse/internal/core/posts"
)

// ListHandler handles live-post listings
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts
// Returns every live post. No live posts yields an empty array.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListLivePosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		log.Printf("Failed to encode list posts response: %v", err)
	}
}
