package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Pulse/internal/auth"
)

type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s *stubVerifier) Verify(token string) (*auth.Claims, error) {
	return s.claims, s.err
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{})
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without credentials")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "AuthRequired")
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{})
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without credentials")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{err: fmt.Errorf("invalid token")})
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a bad token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid or expired token")
}

func TestRequireAuth_InjectsPrincipal(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{claims: &auth.Claims{UserID: "user-1", Name: "Riley Park"}})

	var seen Principal
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetPrincipal(r)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "user-1", seen.ID)
	assert.Equal(t, "Riley Park", seen.Name)
}

func TestGetPrincipal_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	assert.Equal(t, Principal{}, GetPrincipal(req))
}
