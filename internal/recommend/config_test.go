// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.DefaultTopK != 5 {
		t.Errorf("DefaultTopK = %d, want 5", cfg.DefaultTopK)
	}
	if cfg.FallbackThreshold != 0.20 {
		t.Errorf("FallbackThreshold = %f, want 0.20", cfg.FallbackThreshold)
	}
	if cfg.Weights != DefaultWeights() {
		t.Errorf("Weights = %+v, want defaults", cfg.Weights)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero default k", func(c *Config) { c.DefaultTopK = 0 }, "default_top_k must be positive"},
		{"max below default", func(c *Config) { c.MaxTopK = 2 }, "max_top_k"},
		{"negative threshold", func(c *Config) { c.FallbackThreshold = -0.1 }, "fallback_threshold"},
		{"threshold above one", func(c *Config) { c.FallbackThreshold = 1.5 }, "fallback_threshold"},
		{"negative weight", func(c *Config) { c.Weights.Location = -1 }, "weights.location"},
		{"zero weights allowed", func(c *Config) { c.Weights = Weights{} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
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
