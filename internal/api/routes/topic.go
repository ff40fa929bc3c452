package routes

import (
	"github.com/go-chi/chi/v5"

	"Pulse/internal/api/handlers/topic"
	"Pulse/internal/api/middleware"
	"Pulse/internal/core/topics"
)

// RegisterTopicRoutes registers topic-scoped query endpoints on the router.
func RegisterTopicRoutes(r chi.Router, service topics.Service, authMiddleware *middleware.AuthMiddleware) {
	liveHandler := topic.NewLiveHandler(service)
	expiredHandler := topic.NewExpiredHandler(service)
	mostActiveHandler := topic.NewMostActiveHandler(service)

	r.With(authMiddleware.RequireAuth).Get("/api/posts/topic/{topic}", liveHandler.HandleLive)
	r.With(authMiddleware.RequireAuth).Get("/api/posts/topic/{topic}/expired", expiredHandler.HandleExpired)
	r.With(authMiddleware.RequireAuth).Get("/api/posts/topic/{topic}/most-active", mostActiveHandler.HandleMostActive)
}
