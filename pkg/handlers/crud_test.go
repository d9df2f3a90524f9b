package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/repositories"
)

// fakeRows serves canned result sets through the pgx.Rows interface.
type fakeRows struct {
	fields []string
	rows   [][]any
	idx    int
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error { return nil }

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.idx-1], nil }

func (r *fakeRows) RawValues() [][]byte { return nil }

func (r *fakeRows) Conn() *pgx.Conn { return nil }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.fields))
	for i, name := range r.fields {
		fds[i] = pgconn.FieldDescription{Name: name}
	}
	return fds
}

type fakeQuerier struct {
	rows     *fakeRows
	queryErr error
	execTag  pgconn.CommandTag
	execErr  error

	gotSQL  string
	gotArgs []any
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.gotSQL = sql
	q.gotArgs = args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.gotSQL = sql
	q.gotArgs = args
	return q.execTag, q.execErr
}

func krajHandlerOn(db repositories.Querier) (*http.ServeMux, *repositories.Tables) {
	tables := repositories.NewTables(db)
	mux := http.NewServeMux()
	NewCrudHandler(tables.Kraj, zap.NewNop()).RegisterRoutes(mux, "/kraj")
	return mux, tables
}

func TestCrudHandler_List(t *testing.T) {
	db := &fakeQuerier{rows: &fakeRows{
		fields: []string{"id", "nazev"},
		rows:   [][]any{{int32(1), "Jihomoravsky"}, {int32(2), "Stredocesky"}},
	}}
	mux, _ := krajHandlerOn(db)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/kraj", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Jihomoravsky", items[0]["nazev"])
}

func TestCrudHandler_List_Empty(t *testing.T) {
	db := &fakeQuerier{rows: &fakeRows{fields: []string{"id", "nazev"}}}
	mux, _ := krajHandlerOn(db)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/kraj", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String(), "empty table must serialize as an array")
}

func TestCrudHandler_Create(t *testing.T) {
	db := &fakeQuerier{execTag: pgconn.NewCommandTag("INSERT 0 1")}
	mux, _ := krajHandlerOn(db)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/kraj", strings.NewReader(`{"nazev":"Vysocina"}`))
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rows_affected":1}`, rec.Body.String())
	assert.Equal(t, []any{"Vysocina"}, db.gotArgs)
}

func TestCrudHandler_Create_BadBody(t *testing.T) {
	mux, _ := krajHandlerOn(&fakeQuerier{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/kraj", strings.NewReader(`{"nazev":`))
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCrudHandler_Create_Conflict(t *testing.T) {
	db := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505", Message: "duplicate key"}}
	mux, _ := krajHandlerOn(db)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/kraj", strings.NewReader(`{"nazev":"Vysocina"}`))
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCrudHandler_Update(t *testing.T) {
	db := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 1")}
	mux, _ := krajHandlerOn(db)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/kraj", strings.NewReader(`{"id":3,"nazev":"Vysocina"}`))
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rows_affected":1}`, rec.Body.String())
	assert.Equal(t, []any{int32(3), "Vysocina"}, db.gotArgs, "key placeholders come before SET columns")
}

func TestCrudHandler_Update_NotFound(t *testing.T) {
	db := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}
	mux, _ := krajHandlerOn(db)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/kraj", strings.NewReader(`{"id":999,"nazev":"Nikde"}`))
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found\n", rec.Body.String())
}

func TestCrudHandler_Delete(t *testing.T) {
	db := &fakeQuerier{execTag: pgconn.NewCommandTag("DELETE 1")}
	mux, _ := krajHandlerOn(db)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/kraj?id=3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rows_affected":1}`, rec.Body.String())
	assert.Equal(t, []any{int32(3)}, db.gotArgs)
}

func TestCrudHandler_Delete_NotFound(t *testing.T) {
	db := &fakeQuerier{execTag: pgconn.NewCommandTag("DELETE 0")}
	mux, _ := krajHandlerOn(db)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/kraj?id=999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found\n", rec.Body.String())
}

func TestCrudHandler_Delete_MissingKey(t *testing.T) {
	mux, _ := krajHandlerOn(&fakeQuerier{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/kraj", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCrudHandler_Delete_CompositeKey(t *testing.T) {
	db := &fakeQuerier{execTag: pgconn.NewCommandTag("DELETE 1")}
	tables := repositories.NewTables(db)
	mux := http.NewServeMux()
	NewCrudHandler(tables.Vlastnictvi, zap.NewNop()).RegisterRoutes(mux, "/vlastnictvi")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/vlastnictvi?parcela_id=5&majitel_id=8", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{int32(5), int32(8)}, db.gotArgs)
}

func TestCrudHandler_NoUpdateRouteForKeyOnlyTables(t *testing.T) {
	tables := repositories.NewTables(&fakeQuerier{})
	mux := http.NewServeMux()
	NewCrudHandler(tables.Plomba, zap.NewNop()).RegisterRoutes(mux, "/plomba")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/plomba", strings.NewReader(`{"rizeni_id":1,"parcela_id":2}`))
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
