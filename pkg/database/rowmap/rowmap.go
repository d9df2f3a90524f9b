// Package rowmap converts pgx result rows into typed entity values by column
// name. Every accessor fails with *apperrors.MappingError when the column is
// absent, NULL where a value is required, of an unexpected type, or out of
// range for the target integer width.
package rowmap

import (
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
)

// Scanner provides named-column access to the current row of a result set.
type Scanner struct {
	values map[string]any
}

// FromRow captures the current row of rows into a Scanner. rows.Next must
// have returned true before calling.
func FromRow(rows pgx.Rows) (*Scanner, error) {
	vals, err := rows.Values()
	if err != nil {
		return nil, err
	}
	fields := rows.FieldDescriptions()
	values := make(map[string]any, len(fields))
	for i, fd := range fields {
		values[fd.Name] = vals[i]
	}
	return &Scanner{values: values}, nil
}

// FromValues builds a Scanner from explicit column/value pairs. Used by tests.
func FromValues(values map[string]any) *Scanner {
	return &Scanner{values: values}
}

func (s *Scanner) lookup(column string) (any, error) {
	v, ok := s.values[column]
	if !ok {
		return nil, apperrors.NewMappingError(column, "column not present in result")
	}
	return v, nil
}

// String returns a required text column.
func (s *Scanner) String(column string) (string, error) {
	v, err := s.lookup(column)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", apperrors.NewMappingError(column, "expected text, got %T", v)
	}
	return str, nil
}

// NullString returns an optional text column; NULL maps to nil.
func (s *Scanner) NullString(column string) (*string, error) {
	v, err := s.lookup(column)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	str, ok := v.(string)
	if !ok {
		return nil, apperrors.NewMappingError(column, "expected text, got %T", v)
	}
	return &str, nil
}

// Bool returns a required boolean column.
func (s *Scanner) Bool(column string) (bool, error) {
	v, err := s.lookup(column)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, apperrors.NewMappingError(column, "expected boolean, got %T", v)
	}
	return b, nil
}

// Int64 returns a required integer column of any width, widened to int64.
func (s *Scanner) Int64(column string) (int64, error) {
	v, err := s.lookup(column)
	if err != nil {
		return 0, err
	}
	n, ok := asInt64(v)
	if !ok {
		return 0, apperrors.NewMappingError(column, "expected integer, got %T", v)
	}
	return n, nil
}

// Int32 returns a required integer column narrowed to int32. Values outside
// the int32 range fail rather than wrap.
func (s *Scanner) Int32(column string) (int32, error) {
	n, err := s.Int64(column)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, apperrors.NewMappingError(column, "value %d overflows int32", n)
	}
	return int32(n), nil
}

// NullInt32 returns an optional integer column; NULL maps to nil.
func (s *Scanner) NullInt32(column string) (*int32, error) {
	v, err := s.lookup(column)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	n, ok := asInt64(v)
	if !ok {
		return nil, apperrors.NewMappingError(column, "expected integer, got %T", v)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, apperrors.NewMappingError(column, "value %d overflows int32", n)
	}
	out := int32(n)
	return &out, nil
}

// NullInt64 returns an optional integer column widened to int64; NULL maps to nil.
func (s *Scanner) NullInt64(column string) (*int64, error) {
	v, err := s.lookup(column)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	n, ok := asInt64(v)
	if !ok {
		return nil, apperrors.NewMappingError(column, "expected integer, got %T", v)
	}
	return &n, nil
}

// Date returns a required date/timestamp column.
func (s *Scanner) Date(column string) (time.Time, error) {
	v, err := s.lookup(column)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, apperrors.NewMappingError(column, "expected date, got %T", v)
	}
	return t, nil
}

// NullDate returns an optional date/timestamp column; NULL maps to nil.
func (s *Scanner) NullDate(column string) (*time.Time, error) {
	v, err := s.lookup(column)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	t, ok := v.(time.Time)
	if !ok {
		return nil, apperrors.NewMappingError(column, "expected date, got %T", v)
	}
	return &t, nil
}

// Numeric returns a required numeric column as its exact decimal text form.
func (s *Scanner) Numeric(column string) (string, error) {
	v, err := s.lookup(column)
	if err != nil {
		return "", err
	}
	str, ok := asNumericString(v)
	if !ok {
		return "", apperrors.NewMappingError(column, "expected numeric, got %T", v)
	}
	return str, nil
}

// NullNumeric returns an optional numeric column; NULL maps to nil.
func (s *Scanner) NullNumeric(column string) (*string, error) {
	v, err := s.lookup(column)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	str, ok := asNumericString(v)
	if !ok {
		return nil, apperrors.NewMappingError(column, "expected numeric, got %T", v)
	}
	return &str, nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	default:
		return 0, false
	}
}

func asNumericString(v any) (string, bool) {
	switch n := v.(type) {
	case pgtype.Numeric:
		dv, err := n.Value()
		if err != nil {
			return "", false
		}
		str, ok := dv.(string)
		return str, ok
	case string:
		return n, true
	default:
		return "", false
	}
}
