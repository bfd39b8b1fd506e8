// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/novelia/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
// A nil checker means the dependency is not configured and is reported as skipped.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(context.Context) error

	// CheckCache pings the Redis client.
	CheckCache func(context.Context) error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Mode  string `json:"mode,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

/*
readiness handles GET /ready (Readiness probe).

The local store is always present, so the service is usable even when every
remote dependency is down. Configured dependencies that fail to answer turn
the status into "degraded" with a 503.
*/
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	results := []checkResult{
		handler.check(ctx, "postgres", handler.dependencies.CheckDatabase),
		handler.check(ctx, "redis", handler.dependencies.CheckCache),
	}

	responseStatus := "ready"
	httpStatus := http.StatusOK
	for _, result := range results {
		if !result.IsOK {
			responseStatus = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		"status": responseStatus,
		"checks": results,
	}})
}

func (handler *healthHandler) check(ctx context.Context, name string, checker func(context.Context) error) checkResult {
	if checker == nil {
		return checkResult{Name: name, IsOK: true, Mode: "disabled"}
	}

	if err := checker(ctx); err != nil {
		handler.logger.Error("readiness_check_failed", slog.String("dependency", name), slog.Any("error", err))
		return checkResult{Name: name, IsOK: false, Error: err.Error()}
	}
	return checkResult{Name: name, IsOK: true}
}
