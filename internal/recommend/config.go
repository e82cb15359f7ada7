// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import "fmt"

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights is the baseline factor weighting. Requests may override
	// individual factors.
	Weights Weights `json:"weights"`

	// DefaultTopK is used when a request does not specify K.
	// Default: 5.
	DefaultTopK int `json:"default_top_k"`

	// MaxTopK caps the number of results a request may ask for.
	// Default: 50.
	MaxTopK int `json:"max_top_k"`

	// FallbackThreshold is the skills overlap below which the TF-IDF
	// fallback is computed. Zero disables the fallback.
	// Default: 0.20.
	FallbackThreshold float64 `json:"fallback_threshold"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights:           DefaultWeights(),
		DefaultTopK:       5,
		MaxTopK:           50,
		FallbackThreshold: DefaultFallbackThreshold,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.DefaultTopK < 1 {
		return fmt.Errorf("default_top_k must be positive, got %d", c.DefaultTopK)
	}
	if c.MaxTopK < c.DefaultTopK {
		return fmt.Errorf("max_top_k (%d) must be >= default_top_k (%d)", c.MaxTopK, c.DefaultTopK)
	}
	if c.FallbackThreshold < 0 || c.FallbackThreshold > 1 {
		return fmt.Errorf("fallback_threshold must be in [0, 1], got %f", c.FallbackThreshold)
	}
	return nil
}

// Validate checks that no weight is negative.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{FactorSkills, w.Skills},
		{FactorInterests, w.Interests},
		{FactorEducation, w.Education},
		{FactorLocation, w.Location},
	} {
		if f.value < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", f.name, f.value)
		}
	}
	return nil
}
