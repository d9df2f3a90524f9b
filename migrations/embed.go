// Package migrations ships the schema and stored-function migrations inside
// the binary, so a deployed server never depends on a migrations directory
// being present on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
