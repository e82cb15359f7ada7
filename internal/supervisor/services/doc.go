// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package services adapts InternMatch components to suture's Serve pattern.

  - HTTPServerService wraps *http.Server. ListenAndServe runs in a goroutine
    and context cancellation triggers Shutdown with a bounded timeout.
  - DatasetService keeps the listing store fresh. It reloads on file change
    (koanf's file provider watcher, debounced) and on an optional interval.

Return values drive the supervisor:

	ctx.Err()  shutdown requested, normal termination
	error      crashed, restart after backoff

Both services implement fmt.Stringer so supervisor events name them.
*/
package services
