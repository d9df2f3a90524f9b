package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
)

// MappingError reports a row that could not be converted into its entity shape:
// a required column was absent, NULL, of an unexpected type, or out of range.
type MappingError struct {
	Column string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("row mapping failed for column %q: %s", e.Column, e.Reason)
}

// NewMappingError creates a MappingError for the given column.
func NewMappingError(column, format string, args ...any) *MappingError {
	return &MappingError{Column: column, Reason: fmt.Sprintf(format, args...)}
}
