// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package metrics provides Prometheus collectors for InternMatch.

All collectors are registered on the default registry through promauto and
exported at /metrics by the API router:

	curl http://localhost:5000/metrics

# Available Metrics

Every name is prefixed with internmatch_.

HTTP:
  - http_requests_total{method, route, status}
  - http_request_duration_seconds{method, route}
  - http_requests_in_flight
  - http_rate_limited_total{path}

Recommendation:
  - recommend_requests_total{result}
  - recommend_duration_seconds
  - recommend_candidates
  - recommend_fallback_total
  - recommend_matched_by_total{factor}

Dataset:
  - dataset_listings
  - dataset_reloads_total{result}
  - dataset_last_reload_timestamp_seconds

Probe client:
  - probe_breaker_state{name}
  - probe_breaker_calls_total{name, result}

Process:
  - build_info{version, go_version}
  - uptime_seconds
*/
package metrics
