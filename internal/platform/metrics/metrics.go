// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics declares the Prometheus collectors shared by the catalogue
// and translation packages, plus the /metrics handler.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RemoteFallbacks counts reads served from the local store because the remote failed.
	RemoteFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "novelia_remote_fallback_total",
			Help: "Total number of catalogue reads served from the local store after a remote failure.",
		},
		[]string{"operation"},
	)

	// RemoteWriteFailures counts remote writes that did not commit.
	RemoteWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "novelia_remote_write_failures_total",
			Help: "Total number of remote catalogue writes that failed, by reason.",
		},
		[]string{"operation", "reason"},
	)

	aiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "novelia_ai_requests_total",
			Help: "Total number of requests to the generative-text API.",
		},
		[]string{"kind", "status"},
	)

	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "novelia_ai_request_duration_seconds",
			Help:    "Histogram of generative-text API request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// TranslationCache counts cache lookups by result (hit, miss, error).
	TranslationCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "novelia_translation_cache_total",
			Help: "Total number of translation cache lookups by result.",
		},
		[]string{"result"},
	)
)

// ObserveAI records one generative-text call of the given kind.
func ObserveAI(kind string, started time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	aiRequests.WithLabelValues(kind, status).Inc()
	aiRequestDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
