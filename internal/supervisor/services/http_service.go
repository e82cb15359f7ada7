// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// errServerExited is returned when the server stops serving without the
// service context being canceled.
var errServerExited = errors.New("http server exited unexpectedly")

// HTTPServerService runs the API server under supervision. It binds the
// listener itself so a bind failure is returned from Serve and restarted
// with backoff like any other failure.
//
//	server := &http.Server{Addr: ":5000", Handler: router}
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))
type HTTPServerService struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          zerolog.Logger
	addr            atomic.Pointer[string]
}

// NewHTTPServerService wraps server. Non-positive shutdownTimeout selects 10s.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server *http.Server, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With().Str("service", "http-server").Logger(),
	}
}

// Addr returns the bound listen address, or "" before the first
// successful bind. With port 0 this is the port the kernel chose.
func (h *HTTPServerService) Addr() string {
	if p := h.addr.Load(); p != nil {
		return *p
	}
	return ""
}

// Serve implements suture.Service. A canceled ctx triggers a graceful
// Shutdown bounded by the shutdown timeout, after which ctx.Err() is
// returned.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("http server listen on %s: %w", h.server.Addr, err)
	}
	addr := ln.Addr().String()
	h.addr.Store(&addr)
	h.logger.Info().Str("addr", addr).Msg("http server listening")

	served := make(chan error, 1)
	go func() {
		served <- h.server.Serve(ln)
	}()

	select {
	case err := <-served:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return errServerExited
		}
		return fmt.Errorf("http server failed: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.shutdownTimeout)
		defer cancel()

		start := time.Now()
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		<-served

		h.logger.Info().Dur("took", time.Since(start)).Msg("http server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer for suture event logs.
func (h *HTTPServerService) String() string {
	return "http-server"
}
