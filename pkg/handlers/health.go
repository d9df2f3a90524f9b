package handlers

import (
	"net/http"
	"runtime"

	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/config"
)

// ServiceInfoResponse contains service status and version information.
type ServiceInfoResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Service   string `json:"service"`
	GoVersion string `json:"go_version"`
}

// HealthHandler handles the liveness endpoints.
type HealthHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler with the given configuration.
func NewHealthHandler(cfg *config.Config, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, logger: logger}
}

// RegisterRoutes registers the health handler's routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ping", h.Ping)
}

// Health handles GET /health requests. The answer is a bare 200 with an
// empty body; probes only care about the status line.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Ping handles GET /ping requests with service name and version details.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	response := ServiceInfoResponse{
		Status:    "ok",
		Version:   h.cfg.Version,
		Service:   "katastr-server",
		GoVersion: runtime.Version(),
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode service info response", zap.Error(err))
	}
}
