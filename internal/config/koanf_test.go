// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// chdirTemp isolates tests from config files in the working directory.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := Defaults()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "data/internship.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Recommend.DefaultTopK != 5 || cfg.Recommend.SampleSize != 5 {
		t.Errorf("Recommend = %+v, want top_k 5 and sample 5", cfg.Recommend)
	}
	if cfg.Recommend.Weights.Skills != 0.55 {
		t.Errorf("Weights.Skills = %f, want 0.55", cfg.Recommend.Weights.Skills)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Recommend.FallbackThreshold != 0.20 {
		t.Errorf("FallbackThreshold = %f, want 0.20", cfg.Recommend.FallbackThreshold)
	}
}

func TestLoad_File(t *testing.T) {
	dir := chdirTemp(t)
	content := `
server:
  port: 8080
dataset:
  path: /srv/listings.csv
  watch: false
recommend:
  default_top_k: 10
  weights:
    skills: 0.4
    location: 0.4
security:
  cors_origins:
    - https://a.example
    - https://b.example
logging:
  level: debug
`
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "/srv/listings.csv" || cfg.Dataset.Watch {
		t.Errorf("Dataset = %+v", cfg.Dataset)
	}
	if cfg.Recommend.DefaultTopK != 10 {
		t.Errorf("DefaultTopK = %d, want 10", cfg.Recommend.DefaultTopK)
	}
	if cfg.Recommend.Weights.Skills != 0.4 || cfg.Recommend.Weights.Interests != 0.15 {
		t.Errorf("Weights = %+v, want skills 0.4 with interests default", cfg.Recommend.Weights)
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want 2 entries", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 8080\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATASET_PATH", "listings.csv")
	t.Setenv("DATASET_WATCH", "false")
	t.Setenv("RECOMMEND_WEIGHT_LOCATION", "0.5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "listings.csv" || cfg.Dataset.Watch {
		t.Errorf("Dataset = %+v", cfg.Dataset)
	}
	if cfg.Recommend.Weights.Location != 0.5 {
		t.Errorf("Weights.Location = %f, want 0.5", cfg.Recommend.Weights.Location)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoad_MissingExplicitFileFallsBack(t *testing.T) {
	dir := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("server:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 from config.yml", cfg.Server.Port)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	chdirTemp(t)
	t.Setenv("RECOMMEND_DEFAULT_TOP_K", "0")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "recommend.default_top_k") {
		t.Errorf("err = %v, want recommend.default_top_k validation error", err)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"HTTP_PORT":               "server.port",
		"DATASET_PATH":            "dataset.path",
		"RECOMMEND_WEIGHT_SKILLS": "recommend.weights.skills",
		"DISABLE_RATE_LIMIT":      "security.rate_limit_disabled",
		"LOG_LEVEL":               "logging.level",
		"PATH":                    "",
		"HOME":                    "",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
