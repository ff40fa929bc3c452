package routes

import (
	"github.com/go-chi/chi/v5"

	"Pulse/internal/api/handlers/user"
	"Pulse/internal/core/users"
)

// RegisterUserRoutes registers account endpoints on the router.
// Registration and login run before authentication, everything else sits
// behind the auth middleware.
func RegisterUserRoutes(r chi.Router, service users.Service) {
	registerHandler := user.NewRegisterHandler(service)
	loginHandler := user.NewLoginHandler(service)

	r.Post("/api/user/register", registerHandler.HandleRegister)
	r.Post("/api/user/login", loginHandler.HandleLogin)
}
