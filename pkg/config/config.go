package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for katastr-server.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (passwords) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"3000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// LogLevel selects the zap level ("debug", "info", "warn", "error").
	// "silent" disables request logging entirely.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	// Authentication configuration
	Auth AuthConfig `yaml:"auth"`

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// MigrateOnStart applies the embedded migrations before serving.
	MigrateOnStart bool `yaml:"migrate_on_start" env:"MIGRATE_ON_START" env-default:"false"`
}

// AuthConfig holds session-gate configuration.
type AuthConfig struct {
	// Password is an optional plaintext startup password. When set it is
	// bcrypt-hashed once at boot and PasswordHash is ignored.
	Password string `yaml:"-" env:"AUTH_PASSWORD"` // Secret - not in YAML

	// PasswordHash is a precomputed bcrypt hash used when Password is empty.
	// When both are empty the server falls back to its built-in default hash.
	PasswordHash string `yaml:"-" env:"AUTH_PASSWORD_HASH"` // Secret - not in YAML

	// CookieMaxAge is the Max-Age advertised on the session cookie, in seconds.
	CookieMaxAge int `yaml:"cookie_max_age" env:"AUTH_COOKIE_MAX_AGE" env-default:"3600"`

	// SessionTTL enables server-side session expiry when non-zero. With the
	// default of 0 sessions live until the process restarts and only the
	// cookie Max-Age bounds them client-side.
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"0"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"127.0.0.1"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"postgres"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"postgres"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"100"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The YAML file is optional; with no file present configuration
// comes entirely from the environment. The version parameter is injected at
// build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
