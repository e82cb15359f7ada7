// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Bounds enforced on the rate limiter when it is enabled.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "warning", "error"}
	logFormats = []string{"json", "console"}
)

// Validate reports every invalid setting at once. Messages name the
// environment variable an operator would set to fix the value.
func (c *Config) Validate() error {
	var errs []error
	for _, check := range []func() error{
		c.validateServer,
		c.validateDataset,
		c.validateRecommend,
		c.validateRateLimits,
		c.validateLogging,
	} {
		if err := check(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Config) validateServer() error {
	s := c.Server
	var errs []error
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", s.Port))
	}
	if s.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", s.Timeout))
	}
	if s.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be non-negative, got %v", s.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

func (c *Config) validateDataset() error {
	switch {
	case c.Dataset.Path == "":
		return errors.New("DATASET_PATH is required")
	case c.Dataset.ReloadInterval < 0:
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must be non-negative, got %v", c.Dataset.ReloadInterval)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	var errs []error
	if err := c.Recommend.EngineConfig().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("recommend.%w", err))
	}
	if c.Recommend.SampleSize < 1 {
		errs = append(errs, fmt.Errorf("recommend.sample_size must be positive, got %d", c.Recommend.SampleSize))
	}
	return errors.Join(errs...)
}

func (c *Config) validateRateLimits() error {
	sec := c.Security
	if sec.RateLimitDisabled {
		return nil
	}
	var errs []error
	if sec.RateLimitReqs < minRateLimitRequests || sec.RateLimitReqs > maxRateLimitRequests {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d, got %d",
			minRateLimitRequests, maxRateLimitRequests, sec.RateLimitReqs))
	}
	if sec.RateLimitWindow < minRateLimitWindow || sec.RateLimitWindow > maxRateLimitWindow {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v, got %v",
			minRateLimitWindow, maxRateLimitWindow, sec.RateLimitWindow))
	}
	return errors.Join(errs...)
}

func (c *Config) validateLogging() error {
	var errs []error
	if !slices.Contains(logLevels, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not one of %v", c.Logging.Level, logLevels))
	}
	if !slices.Contains(logFormats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q is not one of %v", c.Logging.Format, logFormats))
	}
	return errors.Join(errs...)
}
