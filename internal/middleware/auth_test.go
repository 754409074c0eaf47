package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"go-property-listing/internal/token"
)

type stubValidator struct {
	claims *token.Claims
	err    error
}

func (s stubValidator) ValidateAccessToken(string) (*token.Claims, error) {
	return s.claims, s.err
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, "42", claims.UserID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("passes a valid bearer token through", func(t *testing.T) {
		m := NewAuthMiddleware(stubValidator{claims: &token.Claims{UserID: "42", Role: "user"}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		m.RequireAuth(okHandler).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		m := NewAuthMiddleware(stubValidator{claims: &token.Claims{UserID: "42"}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		m.RequireAuth(okHandler).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		m := NewAuthMiddleware(stubValidator{claims: &token.Claims{UserID: "42"}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		m.RequireAuth(okHandler).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a failing token", func(t *testing.T) {
		m := NewAuthMiddleware(stubValidator{err: errors.New("expired")})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()

		m.RequireAuth(okHandler).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(role string, allowed ...string) int {
		m := NewAuthMiddleware(stubValidator{claims: &token.Claims{UserID: "42", Role: role}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		m.RequireAuth(m.RequireRoles(allowed...)(next)).ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("allows a matching role", func(t *testing.T) {
		require.Equal(t, http.StatusOK, serve("admin", "admin", "super_admin"))
	})

	t.Run("matches roles case-insensitively", func(t *testing.T) {
		require.Equal(t, http.StatusOK, serve("Admin", "admin"))
	})

	t.Run("forbids a non-matching role", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, serve("user", "admin"))
	})
}
