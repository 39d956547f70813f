// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

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
	"github.com/adriaferrer/kiroku/internal/platform/middleware"
	"github.com/adriaferrer/kiroku/internal/search"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. Always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. Returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the admin login route.
	Auth *auth.Handler

	// Work handles the games/anime/manga catalog.
	Work *work.Handler

	// Character handles the character categories.
	Character *character.Handler

	// Saga handles sequel groupings.
	Saga *saga.Handler

	// Favorite handles the ordered favorites shelf.
	Favorite *favorite.Handler

	// Pick handles monthly work and character picks.
	Pick *pick.Handler

	// Edition handles main-game to storefront-edition mappings.
	Edition *edition.Handler

	// Album handles the music log.
	Album *album.Handler

	// Profile handles the singleton site profile.
	Profile *profile.Handler

	// Search handles the IGDB / AniList / Spotify proxies.
	Search *search.Handler

	// Backup handles the site archive and raw export downloads.
	Backup *backup.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// # Route Security
//
// Catalog reads are public (the published site consumes them), mutations
// require the admin token. The search proxies and the backup routes are
// admin-only in full: search spends upstream API quota, and the raw export
// contains private notes.
//
// # Timeouts
//
// The backup routes download every remote cover image in one request, so
// they run under [constants.BackupRequestTimeout] instead of the standard
// request deadline.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {

		// Standard request deadline for everything except backup.
		api.Group(func(standard chi.Router) {
			standard.Use(chimw.Timeout(constants.GlobalRequestTimeout))

			standard.Mount("/auth", h.Auth.Routes())

			standard.Group(func(catalog chi.Router) {
				catalog.Use(adminWrites)

				catalog.Mount("/works", h.Work.Routes())
				catalog.Mount("/characters", h.Character.Routes())
				catalog.Mount("/sagas", h.Saga.Routes())
				catalog.Mount("/favorites", h.Favorite.Routes())
				catalog.Mount("/picks", h.Pick.Routes())
				catalog.Mount("/editions", h.Edition.Routes())
				catalog.Mount("/music", h.Album.Routes())
				catalog.Mount("/profile", h.Profile.Routes())
			})

			standard.With(middleware.RequireAdmin()).Mount("/search", h.Search.Routes())
		})

		// Extended deadline for the archive pipeline.
		api.Group(func(long chi.Router) {
			long.Use(chimw.Timeout(constants.BackupRequestTimeout))
			long.With(middleware.RequireAdmin()).Mount("/backup", h.Backup.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// adminWrites gates every mutating verb behind the admin account while
// leaving reads public.
func adminWrites(next http.Handler) http.Handler {
	gated := middleware.RequireAdmin()(next)

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(writer, request)
		default:
			gated.ServeHTTP(writer, request)
		}
	})
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
