// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package main is the InternMatch HTTP server.
//
// Startup order:
//
//  1. .env (optional, godotenv) and configuration (koanf: defaults, YAML, env)
//  2. Logging (zerolog)
//  3. Dataset: the CSV is loaded once and startup fails if it is unreadable
//  4. Recommendation engine
//  5. Supervisor tree: dataset watcher in the data layer, HTTP server in the
//     API layer
//
// SIGINT and SIGTERM cancel the root context. The HTTP server drains for up
// to SHUTDOWN_TIMEOUT before the process exits.
//
// Example:
//
//	DATASET_PATH=data/internship.csv HTTP_PORT=5000 ./internmatch
package main
