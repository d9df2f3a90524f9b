package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/audit"
	"github.com/katastr-cz/katastr-server/pkg/auth"
)

func TestAuthHandler_Authenticate(t *testing.T) {
	registry := auth.NewRegistry(0)
	handler := NewAuthHandler(registry, auth.DefaultPasswordHash, 3600, audit.NewSecurityAuditor(zap.NewNop()), zap.NewNop())
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth?password=heslo", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, auth.SessionCookieName, cookie.Name)
	assert.Len(t, cookie.Value, 32)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)

	assert.True(t, registry.IsValid(cookie.Value), "minted session must be registered")
}

func TestAuthHandler_Authenticate_WrongPassword(t *testing.T) {
	registry := auth.NewRegistry(0)
	handler := NewAuthHandler(registry, auth.DefaultPasswordHash, 3600, audit.NewSecurityAuditor(zap.NewNop()), zap.NewNop())
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth?password=spatne", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "no cookie may be set on mismatch")
	assert.Equal(t, 0, registry.Len())
}
