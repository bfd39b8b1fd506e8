// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Domain packages register flat routes on the shared /api/v1 router.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/novelia/internal/auth"
	"github.com/taibuivan/novelia/internal/catalog"
	"github.com/taibuivan/novelia/internal/platform/config"
	"github.com/taibuivan/novelia/internal/platform/constants"
	"github.com/taibuivan/novelia/internal/platform/middleware"
	"github.com/taibuivan/novelia/internal/reader"
	"github.com/taibuivan/novelia/internal/translate"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all configured deps are healthy.
	Readiness http.HandlerFunc

	// Metrics serves the Prometheus registry.
	Metrics http.Handler

	// Auth handles the owner passkey gate.
	Auth *auth.Handler

	// Catalog handles stories and chapters.
	Catalog *catalog.Handler

	// Reader serves the reading view with in-chapter search.
	Reader *reader.Handler

	// Translate handles translation and the owner's AI tools.
	Translate *translate.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. ctx bounds background work such as the rate
// limiter cleanup.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Cleanup(ctx, constants.RateLimitCleanupInterval, constants.RateLimitClientTTL)

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Handler)
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins(), cfg.IsDevelopment()))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics)
	}

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		h.Catalog.RegisterRoutes(api)
		h.Reader.RegisterRoutes(api)
		h.Translate.RegisterRoutes(api)
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

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
