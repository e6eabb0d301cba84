// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Package config loads and validates the recommender's configuration.

# Sources

Configuration is layered with koanf, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, else config.yaml, config.yml,
    /etc/recommender/config.yaml
 3. Environment variables, through an explicit name mapping. Variables that
    are not in the mapping are ignored.

# Environment Variables

Database:
  - DB_DRIVER: duckdb or postgres (default: duckdb)
  - DUCKDB_PATH: database file, or :memory: (default: /data/recommender.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: DuckDB worker threads, 0 for NumCPU
  - DATABASE_URL: PostgreSQL DSN, required when DB_DRIVER=postgres
  - SEED_DEMO_DATA: load the demo catalogue into an empty store

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)

Recommendations:
  - RECOMMEND_DEFAULT_K: list size when a request omits k (default: 10)
  - RECOMMEND_MAX_K: largest accepted k (default: 100)
  - RECOMMEND_CACHE_TTL: generic list cache lifetime (default: 5m)
  - RECOMMEND_QUERY_TIMEOUT: per-request store deadline (default: 10s)
  - RECOMMEND_BREAKER_MAX_FAILURES, RECOMMEND_BREAKER_TIMEOUT

Snapshots:
  - SNAPSHOT_ENABLED: run the periodic refresh service (default: true)
  - SNAPSHOT_REFRESH_INTERVAL (default: 1h)
  - SNAPSHOT_ON_STARTUP: refresh once at boot (default: true)
  - SNAPSHOT_MIN_MANUAL_INTERVAL: minimum spacing of API-triggered refreshes

Security:
  - CORS_ORIGINS: comma separated
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("invalid configuration")
	}
*/
package config
