// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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

	"github.com/spf13/cobra"

	"github.com/taibuivan/novelia/internal/api"
	"github.com/taibuivan/novelia/internal/app"
	"github.com/taibuivan/novelia/internal/platform/constants"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, ctx)
		},
	}
}

// runServer is the server startup sequence:
//
//  1. Load configuration and build the structured logger.
//  2. Build the application (local store, optional remote, cache and AI).
//  3. Start the HTTP server and block until a signal or a server error.
//  4. Drain in-flight requests.
func runServer(cmd *cobra.Command, ctx *commandContext) error {
	// ── 1. Configuration & Logger ─────────────────────────────────────────
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := newLogger(os.Stdout, level)
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("remote", cfg.RemoteEnabled()),
		slog.Bool("cache", cfg.CacheEnabled()),
	)

	// ── 2. Application ────────────────────────────────────────────────────
	// A deadline keeps a misconfigured remote from hanging startup.
	startupCtx, startupCancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer startupCancel()

	application, err := app.New(startupCtx, cfg, log)
	if err != nil {
		log.Error("startup_failure", slog.Any("error", err))
		return err
	}
	defer application.Close()

	// ── 3. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(cmd.Context())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, application.Handlers())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
		return err
	}

	// ── 4. Graceful Shutdown ──────────────────────────────────────────────
	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		return err
	}

	log.Info("server_stopped")
	return nil
}
