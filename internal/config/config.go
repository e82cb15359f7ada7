// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package config

import (
	"time"

	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Frontend  FrontendConfig  `koanf:"frontend"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatasetConfig holds listing dataset settings
type DatasetConfig struct {
	// Path is the CSV file with internship listings. Required at startup.
	Path string `koanf:"path"`

	// Watch reloads the dataset when the file changes.
	Watch bool `koanf:"watch"`

	// ReloadInterval additionally reloads on a fixed schedule. Zero disables.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// FrontendConfig holds static frontend settings
type FrontendConfig struct {
	Dir     string `koanf:"dir"`
	Enabled bool   `koanf:"enabled"`
}

// RecommendConfig holds recommendation defaults
type RecommendConfig struct {
	DefaultTopK       int               `koanf:"default_top_k"`
	MaxTopK           int               `koanf:"max_top_k"`
	FallbackThreshold float64           `koanf:"fallback_threshold"`
	SampleSize        int               `koanf:"sample_size"`
	Weights           recommend.Weights `koanf:"weights"`
}

// EngineConfig converts the section into a recommend.Config.
func (r *RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Weights:           r.Weights,
		DefaultTopK:       r.DefaultTopK,
		MaxTopK:           r.MaxTopK,
		FallbackThreshold: r.FallbackThreshold,
	}
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// LoggingOptions converts the section into logging.Config.
func (l *LoggingConfig) LoggingOptions() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
