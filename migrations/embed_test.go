package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups := make(map[string]bool)
	downs := make(map[string]bool)
	for _, name := range files {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("migration %s is neither .up.sql nor .down.sql", name)
		}
	}

	assert.Equal(t, ups, downs, "every up migration needs a matching down")
	assert.True(t, ups["001_schema"])
	assert.True(t, ups["002_functions"])
}

func TestEmbeddedMigrationsNotEmpty(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)

	for _, name := range files {
		data, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.NotEmpty(t, data, "migration %s must not be empty", name)
	}
}
