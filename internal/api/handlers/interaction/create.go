package interaction

import (
	"encoding/json"
	"log"
	"net/http"

	"Pulse/internal/api/middleware"
	"Pulse/internal/core/interactions"
)

// CreateHandler handles interaction creation requests
type CreateHandler struct {
	service interactions.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service interactions.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /api/interactions
// Records a like, dislike, or comment on a live post. A vote supersedes the
// caller's previous vote on the same post.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req interactions.CreateInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal := middleware.GetPrincipal(r)
	if principal.ID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	actor := interactions.UserRef{ID: principal.ID, Name: principal.Name}
	rec, err := h.service.CreateInteraction(r.Context(), actor, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		log.Printf("Failed to encode interaction response: %v", err)
	}
}
