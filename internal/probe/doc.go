// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package probe is a smoke-test client for a running InternMatch server.
//
// Client posts profiles to /recommend through a token bucket limiter and a
// circuit breaker, so a dead or failing server is not hammered. Run fans a
// batch of profiles out over a bounded errgroup and prints one report block
// per profile, in input order.
package probe
