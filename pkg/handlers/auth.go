package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/audit"
	"github.com/katastr-cz/katastr-server/pkg/auth"
)

// AuthHandler handles session creation.
type AuthHandler struct {
	store        auth.SessionStore
	passwordHash string
	cookieMaxAge int
	auditor      *audit.SecurityAuditor
	logger       *zap.Logger
}

// NewAuthHandler creates an AuthHandler verifying against the given bcrypt
// hash. The hash is computed once at startup, never per request.
func NewAuthHandler(store auth.SessionStore, passwordHash string, cookieMaxAge int, auditor *audit.SecurityAuditor, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		store:        store,
		passwordHash: passwordHash,
		cookieMaxAge: cookieMaxAge,
		auditor:      auditor,
		logger:       logger,
	}
}

// RegisterRoutes registers the auth handler's routes on the given mux.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /auth", h.Authenticate)
}

// Authenticate handles GET /auth?password=... requests. On a match it mints a
// session, records it, and hands the identifier back as an HTTP-only cookie.
// A mismatch returns a bare 401 with no Set-Cookie header.
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	password := r.URL.Query().Get("password")

	if !auth.VerifyPassword(h.passwordHash, password) {
		h.auditor.LogAuthFailure(r.RemoteAddr)
		http.Error(w, "Invalid hash", http.StatusUnauthorized)
		return
	}

	sessionID, err := auth.NewSessionID()
	if err != nil {
		h.logger.Error("failed to mint session id", zap.Error(err))
		http.Error(w, fmt.Sprintf("Session error: %v", err), http.StatusInternalServerError)
		return
	}
	h.store.Create(sessionID)

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    sessionID,
		MaxAge:   h.cookieMaxAge,
		Path:     "/",
		HttpOnly: true,
	})
	h.auditor.LogSessionIssued(r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
}
