package routes

import (
	"github.com/go-chi/chi/v5"

	"Pulse/internal/api/handlers/post"
	"Pulse/internal/api/middleware"
	"Pulse/internal/core/posts"
)

// RegisterPostRoutes registers post CRUD endpoints on the router.
// Every post endpoint requires an authenticated principal.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreateHandler(service)
	getHandler := post.NewGetHandler(service)
	listHandler := post.NewListHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Get("/api/posts", listHandler.HandleList)
	r.With(authMiddleware.RequireAuth).Get("/api/posts/{postID}", getHandler.HandleGet)
	r.With(authMiddleware.RequireAuth).Patch("/api/posts/{postID}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/api/posts/{postID}", deleteHandler.HandleDelete)
}
