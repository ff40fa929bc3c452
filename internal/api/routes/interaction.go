package routes

import (
	"github.com/go-chi/chi/v5"

	"Pulse/internal/api/handlers/interaction"
	"Pulse/internal/api/middleware"
	"Pulse/internal/core/interactions"
)

// RegisterInteractionRoutes registers interaction endpoints on the router.
func RegisterInteractionRoutes(r chi.Router, service interactions.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := interaction.NewCreateHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/interactions", createHandler.HandleCreate)
}
