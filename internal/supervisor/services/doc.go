// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Package services adapts long-running components to suture.Service.

HTTPServerService wraps *http.Server: ListenAndServe runs in a goroutine and
context cancellation triggers a bounded graceful Shutdown.

SnapshotService repopulates the PopularItems and DefinitiveRatings tables on
a ticker, optionally once at startup. Each refresh gets a fresh correlation
ID. Failures are logged and retried on the next tick instead of returned,
so a flaky store does not push the supervisor into backoff.

Every service implements fmt.Stringer so suture events name it.
*/
package services
