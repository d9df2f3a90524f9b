package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
	"github.com/katastr-cz/katastr-server/pkg/database/rowmap"
)

// Querier is the subset of pgxpool.Pool the repositories need. Satisfied by
// *pgxpool.Pool and *database.DB.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const pgUniqueViolation = "23505"

// Descriptor declares everything the generic table repository needs to know
// about one entity table: its SQL shape plus the row/argument conversions.
// T is the full row type, N the insert ("new") type.
type Descriptor[T, N any] struct {
	// Name is the SQL table name.
	Name string
	// InsertColumns are the columns supplied on insert, natural order.
	// Composite-key join tables include their key columns here.
	InsertColumns []string
	// UpdateColumns are the non-key columns replaced on update. Empty for
	// append/remove-only tables, which then reject Update.
	UpdateColumns []string
	// Key lists the primary or composite key columns.
	Key []string
	// Scan converts one result row into T.
	Scan func(*rowmap.Scanner) (T, error)
	// InsertArgs produces the statement arguments matching InsertColumns.
	InsertArgs func(N) []any
	// UpdateArgs produces key arguments followed by UpdateColumns arguments.
	UpdateArgs func(T) []any
}

// Table is a generic repository over one entity table, driven entirely by its
// Descriptor. One implementation serves all ~19 cadastral tables.
type Table[T, N any] struct {
	db   Querier
	desc Descriptor[T, N]

	selectSQL string
	insertSQL string
	updateSQL string
	deleteSQL string
}

// NewTable builds a Table repository for the given descriptor. Statement text
// is constructed once, up front.
func NewTable[T, N any](db Querier, desc Descriptor[T, N]) *Table[T, N] {
	t := &Table[T, N]{
		db:        db,
		desc:      desc,
		selectSQL: buildSelect(desc.Name),
		insertSQL: buildInsert(desc.Name, desc.InsertColumns),
		deleteSQL: buildDelete(desc.Name, desc.Key),
	}
	if len(desc.UpdateColumns) > 0 {
		t.updateSQL = buildUpdate(desc.Name, desc.Key, desc.UpdateColumns)
	}
	return t
}

// Name returns the SQL table name.
func (t *Table[T, N]) Name() string { return t.desc.Name }

// SupportsUpdate reports whether the table has non-key mutable columns.
func (t *Table[T, N]) SupportsUpdate() bool { return t.updateSQL != "" }

// Key returns the key column names in placeholder order.
func (t *Table[T, N]) Key() []string { return t.desc.Key }

// List returns every row of the table in natural column order.
func (t *Table[T, N]) List(ctx context.Context) ([]T, error) {
	rows, err := t.db.Query(ctx, t.selectSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.desc.Name, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		sc, err := rowmap.FromRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s row: %w", t.desc.Name, err)
		}
		item, err := t.desc.Scan(sc)
		if err != nil {
			return nil, fmt.Errorf("failed to map %s row: %w", t.desc.Name, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", t.desc.Name, err)
	}
	return items, nil
}

// Create inserts one row and returns the affected-row count. Uniqueness
// violations surface as apperrors.ErrConflict.
func (t *Table[T, N]) Create(ctx context.Context, item N) (int64, error) {
	tag, err := t.db.Exec(ctx, t.insertSQL, t.desc.InsertArgs(item)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, fmt.Errorf("insert into %s: %w", t.desc.Name, apperrors.ErrConflict)
		}
		return 0, fmt.Errorf("failed to insert into %s: %w", t.desc.Name, err)
	}
	return tag.RowsAffected(), nil
}

// Update replaces the non-key columns of the row identified by the full key
// and returns the affected-row count. Zero means the key does not exist; the
// HTTP layer decides what to make of that.
func (t *Table[T, N]) Update(ctx context.Context, item T) (int64, error) {
	if t.updateSQL == "" {
		return 0, fmt.Errorf("table %s does not support update", t.desc.Name)
	}
	tag, err := t.db.Exec(ctx, t.updateSQL, t.desc.UpdateArgs(item)...)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", t.desc.Name, err)
	}
	return tag.RowsAffected(), nil
}

// Delete physically removes the row identified by the key values, which must
// match the descriptor's Key columns in order.
func (t *Table[T, N]) Delete(ctx context.Context, keys ...any) (int64, error) {
	if len(keys) != len(t.desc.Key) {
		return 0, fmt.Errorf("table %s expects %d key values, got %d", t.desc.Name, len(t.desc.Key), len(keys))
	}
	tag, err := t.db.Exec(ctx, t.deleteSQL, keys...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", t.desc.Name, err)
	}
	return tag.RowsAffected(), nil
}

func buildSelect(table string) string {
	return "SELECT * FROM " + table
}

func buildInsert(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

// buildUpdate numbers the key placeholders first, then the SET columns, so a
// single-key table produces "UPDATE t SET c = $2 WHERE id = $1".
func buildUpdate(table string, key, columns []string) string {
	sets := make([]string, len(columns))
	for i, col := range columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, len(key)+i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		table, strings.Join(sets, ", "), keyPredicate(key))
}

func buildDelete(table string, key []string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s", table, keyPredicate(key))
}

func keyPredicate(key []string) string {
	preds := make([]string, len(key))
	for i, col := range key {
		preds[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return strings.Join(preds, " AND ")
}
