// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/middleware"
	"github.com/tomtom215/internmatch/internal/models"
)

// RouterConfig controls the optional parts of the router.
type RouterConfig struct {
	// FrontendDir is served at / when FrontendEnabled is set and the
	// directory exists.
	FrontendDir     string
	FrontendEnabled bool

	// RequestTimeout bounds the rate limited API routes. Zero disables it.
	RequestTimeout time.Duration
}

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler *Handler
	guard   *Guard
	config  RouterConfig
}

// NewRouter creates a Router. A nil guard selects DefaultGuardConfig.
func NewRouter(handler *Handler, guard *Guard, config RouterConfig) *Router {
	if guard == nil {
		guard = NewGuard(DefaultGuardConfig())
	}
	return &Router{
		handler: handler,
		guard:   guard,
		config:  config,
	}
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.guard.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeBadRequest, "method not allowed", nil)
	})

	r.With(middleware.PrometheusMetrics).Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(router.guard.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Compress(5, "application/json"))
		if router.config.RequestTimeout > 0 {
			r.Use(chimiddleware.Timeout(router.config.RequestTimeout))
		}

		r.Post("/recommend", router.handler.Recommend)
		r.Get("/sample", router.handler.Sample)
	})

	router.mountFrontend(r)
	return r
}

func (router *Router) mountFrontend(r chi.Router) {
	if !router.config.FrontendEnabled {
		return
	}
	fh, err := newFrontendHandler(router.config.FrontendDir)
	if err != nil {
		logging.Warn().Err(err).Str("dir", router.config.FrontendDir).Msg("frontend directory unavailable, static routes disabled")
		return
	}
	r.Get("/*", fh.ServeHTTP)
}
