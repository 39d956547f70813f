// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Command api is the entry point for the Kiroku HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/adriaferrer/kiroku/internal/api"
	"github.com/adriaferrer/kiroku/internal/auth"
	"github.com/adriaferrer/kiroku/internal/backup"
	"github.com/adriaferrer/kiroku/internal/catalog/album"
	"github.com/adriaferrer/kiroku/internal/catalog/character"
	"github.com/adriaferrer/kiroku/internal/catalog/edition"
	"github.com/adriaferrer/kiroku/internal/catalog/favorite"
	"github.com/adriaferrer/kiroku/internal/catalog/pick"
	"github.com/adriaferrer/kiroku/internal/catalog/profile"
	"github.com/adriaferrer/kiroku/internal/catalog/saga"
	"github.com/adriaferrer/kiroku/internal/catalog/work"
	"github.com/adriaferrer/kiroku/internal/platform/config"
	"github.com/adriaferrer/kiroku/internal/platform/constants"
	"github.com/adriaferrer/kiroku/internal/platform/migration"
	pgstore "github.com/adriaferrer/kiroku/internal/platform/postgres"
	redisstore "github.com/adriaferrer/kiroku/internal/platform/redis"
	"github.com/adriaferrer/kiroku/internal/platform/sec"
	"github.com/adriaferrer/kiroku/internal/search"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "kiroku"))
	slog.SetDefault(log)

	log.Info("[Kiroku] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "kiroku"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.TokenSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	workRepository := work.NewRepository(pool)
	characterRepository := character.NewRepository(pool)
	sagaRepository := saga.NewRepository(pool)
	favoriteRepository := favorite.NewRepository(pool)
	pickRepository := pick.NewRepository(pool)
	editionRepository := edition.NewRepository(pool)
	albumRepository := album.NewRepository(pool)
	profileRepository := profile.NewRepository(pool)

	sagaService := saga.NewService(sagaRepository, log)
	favoriteService := favorite.NewService(favoriteRepository, log)
	pickService := pick.NewService(pickRepository, log)
	characterService := character.NewService(characterRepository, log)
	editionService := edition.NewService(editionRepository, log)
	albumService := album.NewService(albumRepository, log)
	profileService := profile.NewService(profileRepository, log)
	workService := work.NewService(workRepository, sagaService, favoriteService, pickService, log)

	authService := auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, tokenService, constants.AccessTokenTTL, log)

	tokenCache := search.NewRedisTokenCache(rdb)
	searchService := search.NewService(
		search.NewIGDBClient(cfg.IGDBClientID, cfg.IGDBClientSecret, tokenCache),
		search.NewAniListClient(),
		search.NewSpotifyClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret, tokenCache),
		editionRepository,
		log,
	)

	backupStore := backup.NewCatalogStore(
		workRepository,
		characterRepository,
		sagaRepository,
		favoriteRepository,
		pickRepository,
		albumRepository,
		profileRepository,
	)
	backupService := backup.NewService(backupStore, backup.NewHTTPFetcher(), log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Work:      work.NewHandler(workService),
		Character: character.NewHandler(characterService),
		Saga:      saga.NewHandler(sagaService),
		Favorite:  favorite.NewHandler(favoriteService),
		Pick:      pick.NewHandler(pickService),
		Edition:   edition.NewHandler(editionService),
		Album:     album.NewHandler(albumService),
		Profile:   profile.NewHandler(profileService),
		Search:    search.NewHandler(searchService),
		Backup:    backup.NewHandler(backupService),
	}

	// Background context for the rate limiter's cleanup goroutine; it must
	// outlive the startup deadline.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenService, handlers)

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
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
