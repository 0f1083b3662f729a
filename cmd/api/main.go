// Copyright (c) 2026 GolpoHub. All rights reserved.

// Command api is the entry point for the GolpoHub HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when REDIS_URL is set.
//  5. Run database migrations (idempotent).
//  6. Wire repositories, the auth service and the content catalog.
//  7. Load the catalog and start background refresh.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/golpohub/golpohub/internal/admin"
	"github.com/golpohub/golpohub/internal/api"
	"github.com/golpohub/golpohub/internal/content"
	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/internal/platform/config"
	"github.com/golpohub/golpohub/internal/platform/constants"
	"github.com/golpohub/golpohub/internal/platform/migration"
	pgstore "github.com/golpohub/golpohub/internal/platform/postgres"
	redisstore "github.com/golpohub/golpohub/internal/platform/redis"
	"github.com/golpohub/golpohub/internal/platform/sec"
	"github.com/golpohub/golpohub/internal/site"
	"github.com/golpohub/golpohub/internal/users/auth"
	"github.com/golpohub/golpohub/internal/view"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("redis", cfg.RedisURL != ""),
	)

	// Startup deadline so misconfiguration is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.AuthSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	var (
		revoked  auth.RevocationStore = auth.NewMemoryRevocationStore()
		notifier content.Notifier     = content.NopNotifier{}
	)
	if rdb != nil {
		revoked = auth.NewRedisRevocationStore(rdb)
		notifier = content.NewRedisNotifier(rdb, log)
	}

	authService := auth.NewService(auth.NewPostgresAccountRepository(pool), revoked, tokens, log)
	if cfg.HasAdminBootstrap() {
		must(log, authService.EnsureAdmin(startupCtx, cfg.AdminEmail, cfg.AdminPassword), "ensure admin account")
	}

	catalog := content.NewCatalog(
		story.NewService(story.NewPostgresRepository(pool), log),
		author.NewService(author.NewPostgresRepository(pool), log),
		category.NewService(category.NewPostgresRepository(pool), log),
		log,
		content.WithNotifier(notifier),
	)

	// ── 7. Catalog ────────────────────────────────────────────────────────
	// A failed first load is not fatal: pages report the error and the
	// periodic refresh keeps retrying.
	if err := catalog.Refresh(startupCtx); err != nil {
		log.Warn("catalog_initial_load_failed", slog.Any("error", err))
	}

	runCtx, stopCatalog := context.WithCancel(context.Background())
	catalogDone := make(chan struct{})
	go func() {
		defer close(catalogDone)
		_ = catalog.Run(runCtx, cfg.RefreshInterval)
	}()

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	health := api.HealthDependencies{
		CheckDatabase: func() error { return pgstore.Ping(context.Background(), pool) },
		CheckCatalog:  catalog.Err,
	}
	if rdb != nil {
		health.CheckCache = func() error { return redisstore.Ping(context.Background(), rdb) }
	}
	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	theme := view.ParseTheme(cfg.DefaultTheme, view.ThemeDark)
	secureCookies := !cfg.IsDevelopment()

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Site:      site.NewHandler(catalog, theme, secureCookies),
		Auth:      auth.NewHandler(authService, secureCookies),
		Admin:     admin.NewHandler(catalog, theme),
	}

	server := api.NewServer(runCtx, cfg, log, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	shutdownErr := server.Shutdown(constants.ShutdownTimeout)

	stopCatalog()
	<-catalogDone
	catalog.Close()

	if shutdownErr != nil {
		log.Error("shutdown_failed", slog.Any("error", shutdownErr))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
