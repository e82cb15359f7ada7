// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/internmatch/internal/metrics"
	"github.com/tomtom215/internmatch/internal/models"
)

// GuardConfig configures cross-origin access and per-client rate limiting.
type GuardConfig struct {
	AllowedOrigins  []string
	PreflightMaxAge time.Duration

	// Requests per Window for each client key. Ignored when
	// DisableRateLimit is set.
	Requests         int
	Window           time.Duration
	DisableRateLimit bool

	// ClientKey identifies a client. Defaults to the remote IP, which
	// chi's RealIP has already resolved from proxy headers.
	ClientKey httprate.KeyFunc
}

// DefaultGuardConfig allows any origin and 100 requests a minute per IP.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		AllowedOrigins:  []string{"*"},
		PreflightMaxAge: 24 * time.Hour,
		Requests:        100,
		Window:          time.Minute,
	}
}

// Guard holds the CORS and rate limit middleware for the router.
type Guard struct {
	cors    func(http.Handler) http.Handler
	limiter func(http.Handler) http.Handler
}

// NewGuard builds both middlewares once so the limiter's counters are
// shared by every route that uses it.
func NewGuard(cfg GuardConfig) *Guard {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	g := &Guard{
		cors: cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         int(cfg.PreflightMaxAge / time.Second),
		}),
		limiter: passThrough,
	}
	if !cfg.DisableRateLimit {
		key := cfg.ClientKey
		if key == nil {
			key = httprate.KeyByIP
		}
		g.limiter = httprate.Limit(cfg.Requests, cfg.Window,
			httprate.WithKeyFuncs(key),
			httprate.WithLimitHandler(rejectRateLimited),
		)
	}
	return g
}

// CORS answers preflight requests and sets the allow headers.
func (g *Guard) CORS() func(http.Handler) http.Handler { return g.cors }

// RateLimit is a no-op when rate limiting is disabled.
func (g *Guard) RateLimit() func(http.Handler) http.Handler { return g.limiter }

func passThrough(next http.Handler) http.Handler { return next }

func rejectRateLimited(w http.ResponseWriter, r *http.Request) {
	metrics.RateLimited.WithLabelValues(r.URL.Path).Inc()
	respondError(w, r, http.StatusTooManyRequests, models.ErrCodeRateLimited, "too many requests, slow down", nil)
}
