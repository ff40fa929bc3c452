package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"Pulse/internal/auth"
)

// Context key for the authenticated principal
type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated identity injected into request context.
type Principal struct {
	ID   string
	Name string
}

// TokenVerifier validates a bearer token and returns its claims.
// *auth.Verifier satisfies this; tests substitute their own.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware enforces bearer-token authentication for protected routes.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth ensures the request carries a valid token. If not, it returns
// 401 before any domain logic runs. If valid, it injects the principal into
// the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := m.verifier.Verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, Principal{
			ID:   claims.UserID,
			Name: claims.Name,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal returns the authenticated principal from the request context,
// or the zero value when the request was not authenticated.
func GetPrincipal(r *http.Request) Principal {
	principal, _ := r.Context().Value(principalKey).(Principal)
	return principal
}

// writeAuthError writes a 401 JSON error response
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
