// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Package database is the shop's relational store.

It holds the base tables (Item, Customer, Curator, Purchase, LineItem,
Review) and two snapshot tables derived from them:

  - PopularItems: per category, every item whose unit-sales total is the
    highest or the second highest distinct total in that category. Ties at
    either level are all included. Items with no sales never qualify.
  - DefinitiveRatings: curator reviews on popular items.

Snapshots are rebuilt by Repopulate inside a single transaction, so readers
see either the old or the new snapshot, never a mix.

# Drivers

DuckDB (github.com/duckdb/duckdb-go/v2) is the default and runs embedded,
either on a file or ":memory:". PostgreSQL (github.com/lib/pq) is selected
with database.driver=postgres and a DSN. All SQL is written to run
unchanged on both: numbered placeholders, ANSI joins, window functions.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	stats, err := db.Repopulate(ctx)
	ids, err := db.CuratorIDs(ctx)
	triples, err := db.RatingTriples(ctx, customerID)
*/
package database
