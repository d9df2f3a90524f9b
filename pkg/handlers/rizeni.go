package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/services"
)

// RizeniHandler serves the composite proceeding lookup.
type RizeniHandler struct {
	service services.RizeniService
	logger  *zap.Logger
}

// NewRizeniHandler creates a RizeniHandler over the given service.
func NewRizeniHandler(service services.RizeniService, logger *zap.Logger) *RizeniHandler {
	return &RizeniHandler{service: service, logger: logger}
}

// RegisterRoutes registers the handler's routes on the given mux.
func (h *RizeniHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /spravni_rizeni", h.Get)
}

// Get handles GET /spravni_rizeni requests. The proceeding is addressed
// either by ?id=... or by the natural key ?typ=...&cislo=...&rok=...;
// supplying neither is a 400.
func (h *RizeniHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var q services.RizeniQuery
	if raw := query.Get("id"); raw != "" {
		id, err := parseInt32(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid parameter id: %v", err), http.StatusBadRequest)
			return
		}
		q.ID = &id
	}
	if raw := query.Get("typ"); raw != "" {
		q.Typ = &raw
	}
	if raw := query.Get("cislo"); raw != "" {
		cislo, err := parseInt32(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid parameter cislo: %v", err), http.StatusBadRequest)
			return
		}
		q.Cislo = &cislo
	}
	if raw := query.Get("rok"); raw != "" {
		rok, err := parseInt32(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid parameter rok: %v", err), http.StatusBadRequest)
			return
		}
		q.Rok = &rok
	}

	detail, timings, err := h.service.Get(r.Context(), q)
	if err != nil {
		if errors.Is(err, services.ErrNoDetails) {
			http.Error(w, "Rizeni details not found", http.StatusNotFound)
			return
		}
		writeServiceError(w, h.logger, err, "Rizeni not found")
		return
	}

	w.Header().Set("Server-Timing", formatServerTiming(timings))
	if err := WriteJSON(w, http.StatusOK, detail); err != nil {
		h.logger.Error("Failed to encode rizeni response", zap.Error(err))
	}
}
