// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"missing dataset", func(c *Config) { c.Dataset.Path = "" }, "DATASET_PATH"},
		{"negative reload", func(c *Config) { c.Dataset.ReloadInterval = -time.Second }, "DATASET_RELOAD_INTERVAL"},
		{"negative weight", func(c *Config) { c.Recommend.Weights.Skills = -1 }, "recommend.weights.skills"},
		{"max below default", func(c *Config) { c.Recommend.MaxTopK = 1 }, "recommend.max_top_k"},
		{"zero sample", func(c *Config) { c.Recommend.SampleSize = 0 }, "recommend.sample_size"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"window too short", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"warning alias accepted", func(c *Config) { c.Logging.Level = "warning" }, ""},
		{"negative shutdown", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, "SHUTDOWN_TIMEOUT"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateReportsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Port = 0
	cfg.Dataset.Path = ""
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"HTTP_PORT", "DATASET_PATH", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %s", err, want)
		}
	}
}

func TestRecommendConfig_EngineConfig(t *testing.T) {
	cfg := Defaults()
	engine := cfg.Recommend.EngineConfig()

	if engine.DefaultTopK != cfg.Recommend.DefaultTopK || engine.Weights != cfg.Recommend.Weights {
		t.Errorf("EngineConfig() = %+v, want values from %+v", engine, cfg.Recommend)
	}
}

func TestLoggingConfig_LoggingOptions(t *testing.T) {
	l := LoggingConfig{Level: "debug", Format: "console", Caller: true}
	opts := l.LoggingOptions()
	if opts.Level != "debug" || opts.Format != "console" || !opts.Caller || !opts.Timestamp {
		t.Errorf("LoggingOptions() = %+v", opts)
	}
}
