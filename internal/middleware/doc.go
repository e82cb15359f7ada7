// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package middleware provides the HTTP middleware shared by the InternMatch
router. Every middleware has the chi signature func(http.Handler) http.Handler.

  - RequestID assigns an X-Request-ID (preserving an upstream one) and stores
    it in the logging context, so logging.Ctx(ctx) tags every line.
  - PrometheusMetrics records internmatch_http_requests_total and
    internmatch_http_request_duration_seconds, labelled by the chi route
    pattern to keep label cardinality bounded.
  - AccessLog writes one zerolog line per request.

Order matters: RequestID runs first so the access log and metrics see the ID.

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
