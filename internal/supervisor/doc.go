// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package supervisor runs the long-lived parts of InternMatch under suture v4.

The tree has two layers so a failing dataset watcher cannot take the HTTP
server down with it:

	RootSupervisor ("internmatch")
	├── DataSupervisor ("data-layer")
	│   └── DatasetService (file watch and periodic reload)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (start, failure, backoff) are logged through sutureslog,
which is handed the zerolog-backed slog logger from internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewDatasetService(store, dsCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	return tree.Serve(ctx)

Serve blocks until ctx is canceled. Services that fail to stop within the
shutdown timeout are listed by UnstoppedServiceReport.
*/
package supervisor
