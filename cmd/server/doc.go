// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Command server runs the curator and popularity based recommendation service.

Startup order:

 1. Configuration: defaults, then config.yaml, then environment (koanf v2)
 2. Logging: zerolog with the configured level and format
 3. Database: DuckDB (default) or PostgreSQL, schema created if missing
 4. Demo data: seeded into an empty store when database.seed_demo_data is set
 5. Recommender: circuit breaker and generic-list cache over the store
 6. Supervisor tree: snapshot refresh service and HTTP server

SIGINT or SIGTERM cancels the tree; the HTTP server drains for up to 10s.

Example:

	export DUCKDB_PATH=/data/shop.duckdb
	export SEED_DEMO_DATA=true
	export SNAPSHOT_ON_STARTUP=true
	./server

	curl "localhost:8080/api/v1/recommendations/customers/1?k=5"
*/
package main
