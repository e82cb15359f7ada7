// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/internmatch/internal/metrics"
)

// Engine applies configured defaults and limits around Rank and records
// metrics. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Recommend ranks req.Listings for req.Profile.
//
// K of zero selects the configured default and values above MaxTopK are
// clamped. Weight overrides are merged onto the configured weights.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		metrics.RecordRecommendation(resultLabel(err), 0, 0, 0, nil)
		return nil, fmt.Errorf("recommend: %w", err)
	}

	k, err := e.resolveK(req.K)
	if err != nil {
		metrics.RecordRecommendation(metrics.ResultError, 0, 0, 0, nil)
		return nil, err
	}

	weights := e.config.Weights.Merge(req.Weights)
	if err := weights.Validate(); err != nil {
		metrics.RecordRecommendation(metrics.ResultError, 0, 0, 0, nil)
		return nil, fmt.Errorf("invalid weights: %w", err)
	}

	results, fallbacks := rank(req.Profile, req.Listings, k, weights, e.config.FallbackThreshold, req.Explain)

	matchedBy := make([]string, len(results))
	for i := range results {
		matchedBy[i] = results[i].MatchedBy
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(metrics.ResultSuccess, elapsed, len(req.Listings), fallbacks, matchedBy)

	e.logger.Debug().
		Int("candidates", len(req.Listings)).
		Int("k", k).
		Int("returned", len(results)).
		Int("fallbacks", fallbacks).
		Dur("duration", elapsed).
		Msg("recommendations generated")

	return &Response{
		Results:    results,
		Candidates: len(req.Listings),
	}, nil
}

func (e *Engine) resolveK(k int) (int, error) {
	switch {
	case k < 0:
		return 0, fmt.Errorf("k must be non-negative, got %d", k)
	case k == 0:
		return e.config.DefaultTopK, nil
	case k > e.config.MaxTopK:
		return e.config.MaxTopK, nil
	default:
		return k, nil
	}
}

func resultLabel(err error) string {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return metrics.ResultCanceled
	}
	return metrics.ResultError
}
