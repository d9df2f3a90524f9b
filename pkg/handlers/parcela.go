package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/services"
)

// ParcelaHandler serves the single-parcel lookup.
type ParcelaHandler struct {
	service services.ParcelaService
	logger  *zap.Logger
}

// NewParcelaHandler creates a ParcelaHandler over the given service.
func NewParcelaHandler(service services.ParcelaService, logger *zap.Logger) *ParcelaHandler {
	return &ParcelaHandler{service: service, logger: logger}
}

// RegisterRoutes registers the handler's routes on the given mux.
func (h *ParcelaHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /parcela", h.Get)
}

// Get handles GET /parcela requests keyed by the parcel's natural key:
// katastralni_uzemi, parcelni_cislo, cast_parcely and je_stavebni.
func (h *ParcelaHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	katastralniUzemi := query.Get("katastralni_uzemi")
	if katastralniUzemi == "" {
		http.Error(w, "Missing parameter: katastralni_uzemi", http.StatusBadRequest)
		return
	}
	parcelniCislo, err := parseInt32(query.Get("parcelni_cislo"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid parameter parcelni_cislo: %v", err), http.StatusBadRequest)
		return
	}
	castParcely, err := parseInt32(query.Get("cast_parcely"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid parameter cast_parcely: %v", err), http.StatusBadRequest)
		return
	}
	jeStavebni, err := strconv.ParseBool(query.Get("je_stavebni"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid parameter je_stavebni: %v", err), http.StatusBadRequest)
		return
	}

	rows, err := h.service.Find(r.Context(), katastralniUzemi, jeStavebni, parcelniCislo, castParcely)
	if err != nil {
		writeServiceError(w, h.logger, err, "Parcela not found")
		return
	}
	if err := WriteJSON(w, http.StatusOK, rows); err != nil {
		h.logger.Error("Failed to encode parcela response", zap.Error(err))
	}
}
