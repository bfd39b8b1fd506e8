// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the cross-cutting HTTP processing chain.

Standard Stack:

  - Trace: RequestID generation for log correlation.
  - Log: Structured activity logging (slog).
  - Guard: Rate limiting, CORS and the owner gate.
  - Safe: Panic recovery to prevent server crashes.
*/
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/taibuivan/novelia/internal/platform/apperr"
	"github.com/taibuivan/novelia/internal/platform/constants"
	"github.com/taibuivan/novelia/internal/platform/ctxutil"
	"github.com/taibuivan/novelia/internal/platform/respond"
	"github.com/taibuivan/novelia/pkg/uuid"
)

// # Request Tracing

// RequestID attaches a correlation ID to every request for log tracing.
// A client-supplied X-Request-ID is kept.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New()
			}

			ctx := ctxutil.WithRequestID(request.Context(), requestID)
			writer.Header().Set(constants.HeaderXRequestID, requestID)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Activity Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// StructuredLogger logs every request's status and latency and injects a
// request-scoped logger into the context.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrappedWriter, request.WithContext(ctx))

			logLevel := slog.LevelInfo
			if wrappedWriter.status >= 500 {
				logLevel = slog.LevelError
			} else if wrappedWriter.status >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(ctx, logLevel, "http_request_finished",
				slog.Int("status", wrappedWriter.status),
				slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			)
		})
	}
}

// # Rate Limiting

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP using token buckets.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	limit   rate.Limit
	burst   int
}

// NewRateLimiter returns a limiter allowing rps requests per second with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*rateLimitClient),
		limit:   rate.Limit(rps),
		burst:   burst,
	}
}

// Cleanup evicts idle clients every interval until ctx is done.
func (limiter *RateLimiter) Cleanup(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.mu.Lock()
			for ip, client := range limiter.clients {
				if time.Since(client.lastSeen) > ttl {
					delete(limiter.clients, ip)
				}
			}
			limiter.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// Handler is the middleware form of the limiter.
func (limiter *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !limiter.allow(RealIP(request)) {
			writer.Header().Set("Retry-After", "1")
			respond.Error(writer, request, apperr.RateLimited(1))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

func (limiter *RateLimiter) allow(ip string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	client, found := limiter.clients[ip]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

// # Reliability & Safety

// PanicRecovery recovers from panics, logs the stack trace, and returns 500.
func PanicRecovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					stackTrace := make([]byte, 4096)
					length := runtime.Stack(stackTrace, false)

					ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "panic_recovered",
						slog.Any("error", recovered),
						slog.String("stack", string(stackTrace[:length])),
					)

					respond.Error(writer, request, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
				}
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # Cross-Origin Resource Sharing

// CORS allows the reader frontend to call the API from another origin.
// With no configured origins, any origin is allowed in development and none otherwise.
func CORS(allowedOrigins []string, development bool) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 && development {
		allowedOrigins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", constants.HeaderXRequestID},
		ExposedHeaders: []string{constants.HeaderXRequestID},
		MaxAge:         300,
	}).Handler
}

// # Middleware Helpers

// RealIP extracts the client IP, respecting common proxy headers.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
