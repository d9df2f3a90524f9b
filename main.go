package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katastr-cz/katastr-server/pkg/audit"
	"github.com/katastr-cz/katastr-server/pkg/auth"
	"github.com/katastr-cz/katastr-server/pkg/config"
	"github.com/katastr-cz/katastr-server/pkg/database"
	"github.com/katastr-cz/katastr-server/pkg/handlers"
	"github.com/katastr-cz/katastr-server/pkg/logging"
	"github.com/katastr-cz/katastr-server/pkg/middleware"
	"github.com/katastr-cz/katastr-server/pkg/repositories"
	"github.com/katastr-cz/katastr-server/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("bind_addr", cfg.BindAddr),
		zap.String("port", cfg.Port),
		zap.String("database", logging.SanitizeConnectionString(cfg.Database.ConnectionString())))

	if cfg.MigrateOnStart {
		migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
		if err != nil {
			return fmt.Errorf("failed to open migration connection: %w", err)
		}
		if err := database.RunMigrations(migrationDB, logger); err != nil {
			_ = migrationDB.Close()
			return err
		}
		_ = migrationDB.Close()
	}

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %s", logging.SanitizeError(err))
	}
	defer db.Close()

	passwordHash, err := resolvePasswordHash(cfg, logger)
	if err != nil {
		return err
	}

	auditor := audit.NewSecurityAuditor(logger)
	registry := auth.NewRegistry(cfg.Auth.SessionTTL)
	tables := repositories.NewTables(db)

	sheetService := services.NewSheetService(repositories.NewSheetRepository(db), logger)
	parcelaService := services.NewParcelaService(repositories.NewParcelaRepository(db), logger)
	rizeniService := services.NewRizeniService(repositories.NewRizeniRepository(db), logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewAuthHandler(registry, passwordHash, cfg.Auth.CookieMaxAge, auditor, logger).RegisterRoutes(mux)
	handlers.NewLVHandler(sheetService, logger).RegisterRoutes(mux)
	handlers.NewParcelaHandler(parcelaService, logger).RegisterRoutes(mux)
	handlers.NewRizeniHandler(rizeniService, logger).RegisterRoutes(mux)
	handlers.RegisterCrudRoutes(mux, tables, logger)
	mux.Handle("GET /metrics", promhttp.Handler())

	requestLogger := logger
	if cfg.LogLevel == "silent" {
		requestLogger = nil
	}

	var handler http.Handler = mux
	handler = auth.RequireSession(registry, auditor, logger)(handler)
	handler = middleware.Metrics()(handler)
	handler = middleware.TrackLatency(requestLogger)(handler)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.BindAddr, cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting katastr-server",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}
	return nil
}

// resolvePasswordHash computes the server-wide bcrypt hash once at startup:
// a configured plaintext password wins, then a precomputed hash, then the
// built-in default.
func resolvePasswordHash(cfg *config.Config, logger *zap.Logger) (string, error) {
	if cfg.Auth.Password != "" {
		hash, err := auth.HashPassword(cfg.Auth.Password)
		if err != nil {
			return "", err
		}
		return hash, nil
	}
	if cfg.Auth.PasswordHash != "" {
		return cfg.Auth.PasswordHash, nil
	}
	logger.Warn("no password configured, using built-in default")
	return auth.DefaultPasswordHash, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogLevel == "silent" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Env == "local" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
