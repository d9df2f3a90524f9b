package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/repositories"
)

// RowsAffectedResponse reports how many rows a mutation touched.
type RowsAffectedResponse struct {
	RowsAffected int64 `json:"rows_affected"`
}

// CrudHandler serves the generic per-table endpoints: list, create, update
// and delete. One instance per table, all driven by the table descriptor, so
// adding a table means adding a descriptor rather than another handler set.
type CrudHandler[T, N any] struct {
	table  *repositories.Table[T, N]
	logger *zap.Logger
}

// NewCrudHandler creates a CrudHandler over the given table repository.
func NewCrudHandler[T, N any](table *repositories.Table[T, N], logger *zap.Logger) *CrudHandler[T, N] {
	return &CrudHandler[T, N]{table: table, logger: logger}
}

// RegisterRoutes registers the table's routes under the given path. Tables
// whose columns are all key columns get no PUT route.
func (h *CrudHandler[T, N]) RegisterRoutes(mux *http.ServeMux, path string) {
	mux.HandleFunc("GET "+path, h.List)
	mux.HandleFunc("POST "+path, h.Create)
	if h.table.SupportsUpdate() {
		mux.HandleFunc("PUT "+path, h.Update)
	}
	mux.HandleFunc("DELETE "+path, h.Delete)
}

// List handles GET requests: the full table as a JSON array.
func (h *CrudHandler[T, N]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.table.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Item not found")
		return
	}
	if err := WriteJSON(w, http.StatusOK, items); err != nil {
		h.logger.Error("Failed to encode list response", zap.Error(err), zap.String("table", h.table.Name()))
	}
}

// Create handles POST requests carrying the insert shape in the body.
func (h *CrudHandler[T, N]) Create(w http.ResponseWriter, r *http.Request) {
	var item N
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	affected, err := h.table.Create(r.Context(), item)
	if err != nil {
		writeServiceError(w, h.logger, err, "Item not found")
		return
	}
	if err := WriteJSON(w, http.StatusOK, RowsAffectedResponse{RowsAffected: affected}); err != nil {
		h.logger.Error("Failed to encode create response", zap.Error(err), zap.String("table", h.table.Name()))
	}
}

// Update handles PUT requests carrying the full entity in the body. Updating
// a row that does not exist is a 404, same as deleting one.
func (h *CrudHandler[T, N]) Update(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	affected, err := h.table.Update(r.Context(), item)
	if err != nil {
		writeServiceError(w, h.logger, err, "Item not found")
		return
	}
	if affected == 0 {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	if err := WriteJSON(w, http.StatusOK, RowsAffectedResponse{RowsAffected: affected}); err != nil {
		h.logger.Error("Failed to encode update response", zap.Error(err), zap.String("table", h.table.Name()))
	}
}

// Delete handles DELETE requests keyed by query parameters, one per key
// column (?id=... for single keys, ?parcela_id=...&majitel_id=... for
// composite ones).
func (h *CrudHandler[T, N]) Delete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	keys := make([]any, 0, len(h.table.Key()))
	for _, column := range h.table.Key() {
		raw := query.Get(column)
		if raw == "" {
			http.Error(w, fmt.Sprintf("Missing parameter: %s", column), http.StatusBadRequest)
			return
		}
		value, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid parameter %s: %v", column, err), http.StatusBadRequest)
			return
		}
		keys = append(keys, int32(value))
	}

	affected, err := h.table.Delete(r.Context(), keys...)
	if err != nil {
		writeServiceError(w, h.logger, err, "Item not found")
		return
	}
	if affected == 0 {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	if err := WriteJSON(w, http.StatusOK, RowsAffectedResponse{RowsAffected: affected}); err != nil {
		h.logger.Error("Failed to encode delete response", zap.Error(err), zap.String("table", h.table.Name()))
	}
}

// RegisterCrudRoutes registers every table endpoint on the mux. The parcela
// table lives under /parcela_row; /parcela is the composite lookup.
func RegisterCrudRoutes(mux *http.ServeMux, tables *repositories.Tables, logger *zap.Logger) {
	NewCrudHandler(tables.Kraj, logger).RegisterRoutes(mux, "/kraj")
	NewCrudHandler(tables.Okres, logger).RegisterRoutes(mux, "/okres")
	NewCrudHandler(tables.Obec, logger).RegisterRoutes(mux, "/obec")
	NewCrudHandler(tables.KatastralniUzemi, logger).RegisterRoutes(mux, "/katastralni_uzemi")
	NewCrudHandler(tables.Bpej, logger).RegisterRoutes(mux, "/bpej")
	NewCrudHandler(tables.TypRizeni, logger).RegisterRoutes(mux, "/typ_rizeni")
	NewCrudHandler(tables.TypOperace, logger).RegisterRoutes(mux, "/typ_operace")
	NewCrudHandler(tables.TypUcastnika, logger).RegisterRoutes(mux, "/typ_ucastnika")
	NewCrudHandler(tables.UcastnikRizeni, logger).RegisterRoutes(mux, "/ucastnik_rizeni")
	NewCrudHandler(tables.Majitel, logger).RegisterRoutes(mux, "/majitel")
	NewCrudHandler(tables.ListVlastnictvi, logger).RegisterRoutes(mux, "/list_vlastnictvi")
	NewCrudHandler(tables.ParcelaRow, logger).RegisterRoutes(mux, "/parcela_row")
	NewCrudHandler(tables.Rizeni, logger).RegisterRoutes(mux, "/rizeni")
	NewCrudHandler(tables.Vlastnictvi, logger).RegisterRoutes(mux, "/vlastnictvi")
	NewCrudHandler(tables.BremenoParcelaParcela, logger).RegisterRoutes(mux, "/bremeno_parcela_parcela")
	NewCrudHandler(tables.BremenoParcelaMajitel, logger).RegisterRoutes(mux, "/bremeno_parcela_majitel")
	NewCrudHandler(tables.RizeniOperace, logger).RegisterRoutes(mux, "/rizeni_operace")
	NewCrudHandler(tables.Plomba, logger).RegisterRoutes(mux, "/plomba")
	NewCrudHandler(tables.Ucast, logger).RegisterRoutes(mux, "/ucast")
}
