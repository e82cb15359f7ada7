// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package config loads InternMatch configuration with Koanf v2.

Sources are layered, later ones overriding earlier ones:

 1. Built-in defaults (Defaults)
 2. YAML file: CONFIG_PATH, or the first of config.yaml, config.yml,
    /etc/internmatch/config.yaml
 3. Environment variables

# Environment Variables

	HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
	DATASET_PATH, DATASET_WATCH, DATASET_RELOAD_INTERVAL
	FRONTEND_DIR, FRONTEND_ENABLED
	RECOMMEND_DEFAULT_TOP_K, RECOMMEND_MAX_TOP_K, RECOMMEND_FALLBACK_THRESHOLD,
	RECOMMEND_SAMPLE_SIZE, RECOMMEND_WEIGHT_SKILLS, RECOMMEND_WEIGHT_INTERESTS,
	RECOMMEND_WEIGHT_EDUCATION, RECOMMEND_WEIGHT_LOCATION
	CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
	DISABLE_RATE_LIMIT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example File

	server:
	  port: 5000
	dataset:
	  path: data/internship.csv
	  watch: true
	recommend:
	  default_top_k: 5
	  weights:
	    skills: 0.55
	    interests: 0.15
	    education: 0.10
	    location: 0.20
	security:
	  cors_origins: ["https://internmatch.example"]
*/
package config
