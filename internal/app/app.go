// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package app is the composition root shared by the HTTP server and the CLI.

Startup Sequence:

 1. Open the local SQLite store and seed the demo catalogue if it is empty.
 2. Connect to PostgreSQL and apply migrations, when DATABASE_URL is set.
 3. Connect to Redis, when REDIS_URL is set.
 4. Build the generative-text client, when AI_API_KEY is set.
 5. Wire the domain services.

Only the local store is mandatory. A remote that is configured but
unreachable at startup is logged and the app runs offline.
*/
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/novelia/internal/api"
	"github.com/taibuivan/novelia/internal/auth"
	"github.com/taibuivan/novelia/internal/catalog"
	"github.com/taibuivan/novelia/internal/platform/config"
	"github.com/taibuivan/novelia/internal/platform/kv"
	"github.com/taibuivan/novelia/internal/platform/metrics"
	"github.com/taibuivan/novelia/internal/platform/migration"
	pgstore "github.com/taibuivan/novelia/internal/platform/postgres"
	redisstore "github.com/taibuivan/novelia/internal/platform/redis"
	"github.com/taibuivan/novelia/internal/reader"
	"github.com/taibuivan/novelia/internal/translate"
)

// App holds every long-lived dependency.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	Local *kv.SQLite
	Pool  *pgxpool.Pool
	Redis *redis.Client

	Gate      *auth.Gate
	Catalog   *catalog.Service
	Translate *translate.Service
}

// New connects to everything cfg names and wires the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}

	// ── 1. Local store ─────────────────────────────────────────────────────
	local, err := kv.OpenSQLite(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("app: open local store: %w", err)
	}
	app.Local = local
	logger.Info("local_store_opened", slog.String("path", local.Path()))

	localStore := catalog.NewLocalStore(local, logger)
	if cfg.SeedLocal {
		if err := localStore.Seed(ctx, time.Now()); err != nil {
			app.Close()
			return nil, fmt.Errorf("app: seed local store: %w", err)
		}
	}

	// ── 2. Remote store ────────────────────────────────────────────────────
	var remote catalog.RemoteStore = catalog.OfflineRemote{}
	if cfg.RemoteEnabled() {
		if pool := app.connectRemote(ctx); pool != nil {
			app.Pool = pool
			remote = catalog.NewPostgresStore(pool)
		}
	} else {
		logger.Info("remote_store_disabled")
	}

	// ── 3. Translation cache ───────────────────────────────────────────────
	var cache translate.Cache
	if cfg.CacheEnabled() {
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			logger.Warn("translation_cache_unavailable", slog.Any("error", err))
		} else {
			app.Redis = client
			cache = translate.NewRedisCache(client, cfg.TranslationCacheTTL)
		}
	}

	// ── 4. Generative-text client ──────────────────────────────────────────
	var aiClient *translate.Client
	if cfg.AIAPIKey != "" {
		generator := translate.NewOpenAIGenerator(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		aiClient = translate.NewClient(generator, cfg.AITimeout)
	} else {
		logger.Info("ai_features_disabled")
	}

	// ── 5. Services ────────────────────────────────────────────────────────
	app.Gate = auth.NewGate(local, cfg.OwnerPasskey, logger)
	app.Catalog = catalog.NewService(remote, localStore, cfg.RemoteTimeout, logger)
	app.Translate = translate.NewService(aiClient, cache, logger)

	return app, nil
}

// connectRemote opens the pool and migrates it. It returns nil when the
// remote cannot be used, leaving the app offline.
func (app *App) connectRemote(ctx context.Context) *pgxpool.Pool {
	pool, err := pgstore.NewPool(ctx, app.Config.DatabaseURL, app.Config.RemoteTimeout, app.Logger)
	if err != nil {
		app.Logger.Warn("remote_store_unavailable", slog.Any("error", err))
		return nil
	}

	if err := migration.NewRunner(app.Config.DatabaseURL, app.Config.MigrationPath, app.Logger).Up(); err != nil {
		app.Logger.Warn("remote_store_unavailable", slog.String("stage", "migrate"), slog.Any("error", err))
		pool.Close()
		return nil
	}

	return pool
}

// Handlers builds the HTTP handler set.
func (app *App) Handlers() api.Handlers {
	health := api.HealthDependencies{}
	if app.Pool != nil {
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, app.Pool) }
	}
	if app.Redis != nil {
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, app.Redis) }
	}
	liveness, readiness := api.NewHealthHandlers(health, app.Logger)

	return api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   metrics.Handler(),
		Auth:      auth.NewHandler(app.Gate),
		Catalog:   catalog.NewHandler(app.Catalog, app.Gate, app.Translate),
		Reader:    reader.NewHandler(app.Catalog, app.Translate),
		Translate: translate.NewHandler(app.Translate, app.Gate),
	}
}

// Close releases every connection. It is safe to call on a partially built App.
func (app *App) Close() {
	if app.Redis != nil {
		if err := app.Redis.Close(); err != nil {
			app.Logger.Error("redis_close_failed", slog.Any("error", err))
		}
	}
	if app.Pool != nil {
		app.Pool.Close()
	}
	if app.Local != nil {
		if err := app.Local.Close(); err != nil {
			app.Logger.Error("local_store_close_failed", slog.Any("error", err))
		}
	}
}
