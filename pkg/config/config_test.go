package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, "test-version", cfg.Version)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.BindAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int32(100), cfg.Database.MaxConnections)
	assert.Equal(t, 3600, cfg.Auth.CookieMaxAge)
	assert.Equal(t, time.Duration(0), cfg.Auth.SessionTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("PGPASSWORD", "heslo")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Load("dev")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "heslo", cfg.Database.Password)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
}

func TestConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "heslo",
		Database: "katastr",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=heslo dbname=katastr sslmode=disable",
		cfg.ConnectionString())
}
