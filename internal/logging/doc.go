// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package logging provides the process-wide zerolog logger for InternMatch.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("listings", n).Msg("dataset loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("request rejected")
//
// Request-scoped logging picks up the request_id stored by the request ID
// middleware. NewSlogHandler bridges zerolog to log/slog for libraries such
// as sutureslog.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
