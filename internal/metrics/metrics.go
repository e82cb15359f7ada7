// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "internmatch"

// Outcome labels shared by the result-labelled counters.
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultCanceled = "canceled"
	ResultRejected = "rejected"
	ResultFailure  = "failure"
)

// HTTP layer, recorded by middleware.PrometheusMetrics and the rate limiter.
var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "http", Name: "requests_total",
		Help: "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
		Help:    "HTTP request latency by method and route pattern.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})

	HTTPInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: "http", Name: "requests_in_flight",
		Help: "HTTP requests currently being served.",
	})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "http", Name: "rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter.",
	}, []string{"path"})
)

// Recommendation engine.
var (
	RecommendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "recommend", Name: "requests_total",
		Help: "Engine.Recommend calls by result (success, error, canceled).",
	}, []string{"result"})

	RecommendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Subsystem: "recommend", Name: "duration_seconds",
		Help:    "Time spent scoring and ranking listings.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})

	RecommendCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Subsystem: "recommend", Name: "candidates",
		Help:    "Listings scored per call.",
		Buckets: prometheus.ExponentialBuckets(10, 2, 10),
	})

	RecommendFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "recommend", Name: "fallback_total",
		Help: "Listings that needed the TF-IDF skills fallback.",
	})

	RecommendMatchedBy = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "recommend", Name: "matched_by_total",
		Help: "Returned recommendations by dominant factor.",
	}, []string{"factor"})
)

// Dataset snapshot.
var (
	DatasetListings = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: "dataset", Name: "listings",
		Help: "Listings in the active snapshot.",
	})

	DatasetReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "dataset", Name: "reloads_total",
		Help: "Dataset load attempts by result (success, error).",
	}, []string{"result"})

	DatasetLastReload = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: "dataset", Name: "last_reload_timestamp_seconds",
		Help: "Unix time of the last successful load.",
	})
)

// Probe client circuit breaker.
var (
	BreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: "probe", Name: "breaker_state",
		Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open.",
	}, []string{"name"})

	BreakerCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "probe", Name: "breaker_calls_total",
		Help: "Calls through the circuit breaker by result (success, failure, rejected).",
	}, []string{"name", "result"})
)

// Process.
var (
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace, Name: "build_info",
		Help: "Always 1; labels carry the version and Go runtime.",
	}, []string{"version", "go_version"})

	Uptime = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "uptime_seconds",
		Help: "Seconds since the server started.",
	})
)

// ObserveHTTP records one finished HTTP request.
func ObserveHTTP(method, route, status string, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordRecommendation records one Engine.Recommend call. Latency and factor
// counts are only observed for successful calls.
func RecordRecommendation(result string, elapsed time.Duration, candidates, fallbacks int, matchedBy []string) {
	RecommendRequests.WithLabelValues(result).Inc()
	if result != ResultSuccess {
		return
	}
	RecommendDuration.Observe(elapsed.Seconds())
	RecommendCandidates.Observe(float64(candidates))
	RecommendFallbacks.Add(float64(fallbacks))
	for _, factor := range matchedBy {
		RecommendMatchedBy.WithLabelValues(factor).Inc()
	}
}

// RecordDatasetReload records a load attempt. A failed load leaves the
// listings gauge at the previous snapshot's size.
func RecordDatasetReload(listings int, err error) {
	if err != nil {
		DatasetReloads.WithLabelValues(ResultError).Inc()
		return
	}
	DatasetReloads.WithLabelValues(ResultSuccess).Inc()
	DatasetListings.Set(float64(listings))
	DatasetLastReload.SetToCurrentTime()
}

// RecordBreakerCall records a call outcome and the breaker state after it.
func RecordBreakerCall(name, result string, state float64) {
	BreakerCalls.WithLabelValues(name, result).Inc()
	BreakerState.WithLabelValues(name).Set(state)
}
