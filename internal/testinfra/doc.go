// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

// Package testinfra starts Docker containers for integration tests with
// testcontainers-go.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// Tests call SkipIfNoDocker first so they are skipped rather than failed on
// machines without a Docker daemon.
//
// # PostgreSQL
//
// NewPostgresContainer runs a throwaway PostgreSQL server so the store's
// SQL is exercised against the lib/pq driver as well as embedded DuckDB.
package testinfra
