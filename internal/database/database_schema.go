// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the base and snapshot tables.
func (db *DB) createTables(ctx context.Context) error {
	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// tableCreationQueries returns the schema DDL. Snapshot tables carry no keys
// because Repopulate deletes and reinserts them within one transaction.
func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS Item (
			iid INTEGER PRIMARY KEY,
			category TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS Customer (
			cid INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS Curator (
			cid INTEGER PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS Purchase (
			pid INTEGER PRIMARY KEY,
			cid INTEGER NOT NULL,
			d TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS LineItem (
			pid INTEGER NOT NULL,
			iid INTEGER NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			PRIMARY KEY (pid, iid)
		)`,
		`CREATE TABLE IF NOT EXISTS Review (
			cid INTEGER NOT NULL,
			iid INTEGER NOT NULL,
			rating INTEGER NOT NULL CHECK (rating >= 0 AND rating <= 10),
			PRIMARY KEY (cid, iid)
		)`,
		`CREATE TABLE IF NOT EXISTS PopularItems (
			iid INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS DefinitiveRatings (
			cid INTEGER NOT NULL,
			iid INTEGER NOT NULL,
			rating INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_purchase_cid ON Purchase (cid)`,
		`CREATE INDEX IF NOT EXISTS idx_review_iid ON Review (iid)`,
	}
}
