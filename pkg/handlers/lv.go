package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/services"
)

// LVHandler serves the composite ownership-sheet lookup.
type LVHandler struct {
	service services.SheetService
	logger  *zap.Logger
}

// NewLVHandler creates an LVHandler over the given service.
func NewLVHandler(service services.SheetService, logger *zap.Logger) *LVHandler {
	return &LVHandler{service: service, logger: logger}
}

// RegisterRoutes registers the handler's routes on the given mux.
func (h *LVHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /lv", h.Get)
}

// Get handles GET /lv?katastralni_uzemi=...&cislo_lv=... requests.
func (h *LVHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	katastralniUzemi := query.Get("katastralni_uzemi")
	if katastralniUzemi == "" {
		http.Error(w, "Missing parameter: katastralni_uzemi", http.StatusBadRequest)
		return
	}
	cisloLV, err := parseInt32(query.Get("cislo_lv"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid parameter cislo_lv: %v", err), http.StatusBadRequest)
		return
	}

	sheet, timings, err := h.service.Get(r.Context(), katastralniUzemi, cisloLV)
	if err != nil {
		writeServiceError(w, h.logger, err, "LV not found")
		return
	}

	w.Header().Set("Server-Timing", formatServerTiming(timings))
	if err := WriteJSON(w, http.StatusOK, sheet); err != nil {
		h.logger.Error("Failed to encode lv response", zap.Error(err))
	}
}

// formatServerTiming renders per-part durations in the Server-Timing wire
// format, milliseconds with two decimals.
func formatServerTiming(timings []services.PartTiming) string {
	entries := make([]string, len(timings))
	for i, t := range timings {
		entries[i] = fmt.Sprintf("%s;dur=%.2f", t.Name, float64(t.Duration.Microseconds())/1000.0)
	}
	return strings.Join(entries, ", ")
}

func parseInt32(raw string) (int32, error) {
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(value), nil
}
