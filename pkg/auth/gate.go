package auth

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/audit"
)

// SessionCookieName is the cookie carrying the session identifier.
const SessionCookieName = "katastr_session"

// publicPaths are reachable without a session regardless of method.
var publicPaths = map[string]bool{
	"/health":  true,
	"/auth":    true,
	"/metrics": true,
}

// RequireSession gates mutating requests behind the session registry. Safe
// methods (GET, OPTIONS) and public paths pass through untouched; everything
// else must present a valid session cookie.
//
// The two 401 bodies are distinct on purpose: "Missing auth cookie" and
// "Invalid session" are both unauthenticated but point at different client
// problems.
func RequireSession(store SessionStore, auditor *audit.SecurityAuditor, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				logger.Info("rejected request without auth cookie",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path))
				auditor.LogSessionRejected(r.RemoteAddr, audit.SessionRejectionDetails{
					Method: r.Method,
					Path:   r.URL.Path,
					Reason: "missing_cookie",
				})
				http.Error(w, "Missing auth cookie", http.StatusUnauthorized)
				return
			}

			if !store.IsValid(cookie.Value) {
				logger.Info("rejected request with invalid session",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path))
				auditor.LogSessionRejected(r.RemoteAddr, audit.SessionRejectionDetails{
					Method: r.Method,
					Path:   r.URL.Path,
					Reason: "invalid_session",
				})
				http.Error(w, "Invalid session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
