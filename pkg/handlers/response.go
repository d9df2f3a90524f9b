package handlers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
)

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// writeServiceError maps a service error onto the HTTP boundary. Store and
// mapping failures surface as 500 with the underlying message; nothing is
// retried or swallowed. The not-found body varies per endpoint, so callers
// pass it in.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, notFoundMsg, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrBadRequest):
		http.Error(w, "Missing parameters: either 'id' or 'typ', 'cislo', 'rok' must be provided", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrConflict):
		http.Error(w, "Conflict: "+err.Error(), http.StatusConflict)
	default:
		logger.Error("request failed", zap.Error(err))
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
	}
}
