// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/internmatch/internal/api"
	"github.com/tomtom215/internmatch/internal/config"
	"github.com/tomtom215/internmatch/internal/dataset"
	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/metrics"
	"github.com/tomtom215/internmatch/internal/recommend"
	"github.com/tomtom215/internmatch/internal/supervisor"
	"github.com/tomtom215/internmatch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.LoggingOptions())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("InternMatch stopped with error")
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	started := time.Now()
	metrics.BuildInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("dataset", cfg.Dataset.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting InternMatch")

	store, err := dataset.Open(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), logging.Logger())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	server := newHTTPServer(cfg, store, engine)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if cfg.Dataset.Watch || cfg.Dataset.ReloadInterval > 0 {
		tree.AddDataService(services.NewDatasetService(store, services.DatasetServiceConfig{
			Path:           cfg.Dataset.Path,
			Watch:          cfg.Dataset.Watch,
			ReloadInterval: cfg.Dataset.ReloadInterval,
		}, logging.WithComponent("supervisor")))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("supervisor")))

	go trackUptime(ctx, started)

	errCh := tree.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, stopping services")
		// The channel receives exactly one value and is never closed.
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("supervisor tree: %w", err)
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Dur("uptime", time.Since(started)).Msg("InternMatch stopped")
	return nil
}

// newHTTPServer builds the router and wraps it in an http.Server.
func newHTTPServer(cfg *config.Config, store *dataset.Store, engine *recommend.Engine) *http.Server {
	guard := api.NewGuard(api.GuardConfig{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		PreflightMaxAge:  24 * time.Hour,
		Requests:         cfg.Security.RateLimitReqs,
		Window:           cfg.Security.RateLimitWindow,
		DisableRateLimit: cfg.Security.RateLimitDisabled,
	})
	handler := api.NewHandler(engine, store, cfg.Recommend.SampleSize)
	router := api.NewRouter(handler, guard, api.RouterConfig{
		FrontendDir:     cfg.Frontend.Dir,
		FrontendEnabled: cfg.Frontend.Enabled,
		RequestTimeout:  cfg.Server.Timeout,
	})

	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

func trackUptime(ctx context.Context, started time.Time) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		metrics.Uptime.Set(time.Since(started).Seconds())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
