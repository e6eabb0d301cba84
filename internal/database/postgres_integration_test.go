// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/config"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/testinfra"
)

// TestPostgres_Integration runs the store against a real PostgreSQL server
// through lib/pq, checking the SQL shared with DuckDB behaves the same.
func TestPostgres_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, err := testinfra.NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL: %v", err)
	}
	testinfra.CleanupContainer(t, pg)

	db, err := New(&config.DatabaseConfig{Driver: config.DriverPostgres, DSN: pg.DSN})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer db.Close()

	seedFixture(t, db)

	stats, err := db.Repopulate(ctx)
	if err != nil {
		t.Fatalf("Repopulate() error = %v", err)
	}
	if stats.PopularItems != 5 || stats.DefinitiveRatings != 5 {
		t.Errorf("stats = %+v, want 5 popular items and 5 definitive ratings", stats)
	}

	triples, err := db.RatingTriples(ctx, 1)
	if err != nil {
		t.Fatalf("RatingTriples() error = %v", err)
	}
	if len(triples) != 7 {
		t.Errorf("len(RatingTriples(1)) = %d, want 7", len(triples))
	}

	averages, err := db.PopularItemAverages(ctx)
	if err != nil {
		t.Fatalf("PopularItemAverages() error = %v", err)
	}
	if len(averages) != 4 || averages[0].ItemID != 2 || averages[1].ItemID != 3 {
		t.Errorf("PopularItemAverages() = %v, want items 2, 3 first", averages)
	}

	unbought, err := db.UnboughtRatings(ctx, 10, 1)
	if err != nil {
		t.Fatalf("UnboughtRatings() error = %v", err)
	}
	if len(unbought) != 3 || unbought[0].ItemID != 2 {
		t.Errorf("UnboughtRatings(10, 1) = %v, want [2 5 6]", unbought)
	}
}
