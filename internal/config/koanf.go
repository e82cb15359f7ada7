// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/internmatch/internal/recommend"
)

// SearchPaths are tried in order when CONFIG_PATH is unset or missing.
var SearchPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/internmatch/config.yaml",
}

// ConfigPathEnvVar names an explicit config file.
const ConfigPathEnvVar = "CONFIG_PATH"

// Defaults returns the configuration used when nothing overrides it. The
// recommend section mirrors recommend.DefaultConfig.
func Defaults() *Config {
	engine := recommend.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Dataset: DatasetConfig{
			Path:  "data/internship.csv",
			Watch: true,
		},
		Frontend: FrontendConfig{
			Dir:     "Frontend",
			Enabled: true,
		},
		Recommend: RecommendConfig{
			DefaultTopK:       engine.DefaultTopK,
			MaxTopK:           engine.MaxTopK,
			FallbackThreshold: engine.FallbackThreshold,
			SampleSize:        5,
			Weights:           engine.Weights,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from three layers, later ones winning:
// built-in defaults, an optional YAML file, then environment variables.
// The merged result is validated before it is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if path := configFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if err := splitLists(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// configFile picks the YAML file to load. An explicit CONFIG_PATH that does
// not exist falls through to the search paths.
func configFile() string {
	candidates := SearchPaths
	if explicit := os.Getenv(ConfigPathEnvVar); explicit != "" {
		candidates = append([]string{explicit}, SearchPaths...)
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// listKeys are read from env as comma lists but decode into []string.
var listKeys = []string{"security.cors_origins"}

func splitLists(k *koanf.Koanf) error {
	for _, key := range listKeys {
		raw, ok := k.Get(key).(string)
		if !ok {
			continue
		}
		var items []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		if err := k.Set(key, items); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}

// envKeys maps lowercased environment variable names to koanf keys.
var envKeys = map[string]string{
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",

	"dataset_path":            "dataset.path",
	"dataset_watch":           "dataset.watch",
	"dataset_reload_interval": "dataset.reload_interval",

	"frontend_dir":     "frontend.dir",
	"frontend_enabled": "frontend.enabled",

	"recommend_default_top_k":      "recommend.default_top_k",
	"recommend_max_top_k":          "recommend.max_top_k",
	"recommend_fallback_threshold": "recommend.fallback_threshold",
	"recommend_sample_size":        "recommend.sample_size",
	"recommend_weight_skills":      "recommend.weights.skills",
	"recommend_weight_interests":   "recommend.weights.interests",
	"recommend_weight_education":   "recommend.weights.education",
	"recommend_weight_location":    "recommend.weights.location",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envKey returns the koanf key for an environment variable, or "" to skip
// it. RECOMMEND_WEIGHT_SKILLS becomes recommend.weights.skills.
func envKey(name string) string {
	return envKeys[strings.ToLower(name)]
}
