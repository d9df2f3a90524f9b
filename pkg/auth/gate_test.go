package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/audit"
)

func gatedHandler(t *testing.T, store SessionStore) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return RequireSession(store, audit.NewSecurityAuditor(zap.NewNop()), zap.NewNop())(next)
}

func TestRequireSession_SafeMethodsPass(t *testing.T) {
	handler := gatedHandler(t, NewRegistry(0))

	for _, method := range []string{http.MethodGet, http.MethodOptions} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(method, "/kraj", nil))
		assert.Equal(t, http.StatusOK, rec.Code, "method %s", method)
	}
}

func TestRequireSession_PublicPathsPass(t *testing.T) {
	handler := gatedHandler(t, NewRegistry(0))

	for _, path := range []string{"/health", "/auth", "/metrics"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}

func TestRequireSession_MissingCookie(t *testing.T) {
	handler := gatedHandler(t, NewRegistry(0))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/kraj", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Missing auth cookie\n", rec.Body.String())
}

func TestRequireSession_InvalidSession(t *testing.T) {
	handler := gatedHandler(t, NewRegistry(0))

	req := httptest.NewRequest(http.MethodPost, "/kraj", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid session\n", rec.Body.String())
}

func TestRequireSession_ValidSession(t *testing.T) {
	reg := NewRegistry(0)
	reg.Create("abc123")
	handler := gatedHandler(t, reg)

	req := httptest.NewRequest(http.MethodDelete, "/kraj", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "abc123"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
