// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Package supervisor runs the recommender's long-lived services under a
suture v4 supervisor tree.

	recommender
	├── snapshot-layer
	│   └── SnapshotService (if snapshot.enabled)
	└── api-layer
	    └── HTTPServerService

Each layer counts failures on its own, so a refresh loop that keeps failing
backs off without restarting the HTTP server. Suture events are logged
through sutureslog into the zerolog-backed slog handler from package
logging.

Usage in main:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddSnapshotService(services.NewSnapshotService(rec, snapCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)

Context cancellation stops every service; UnstoppedServiceReport lists any
that missed the shutdown timeout.
*/
package supervisor
