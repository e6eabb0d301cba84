// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
)

// popularItemsQuery ranks each category's items by total units sold. A
// DENSE_RANK of 1 or 2 is exactly the union of the top sellers and the
// second top sellers, ties included.
const popularItemsQuery = `
INSERT INTO PopularItems (iid)
SELECT ranked.iid
FROM (
	SELECT itemsales.iid,
		DENSE_RANK() OVER (PARTITION BY itemsales.category ORDER BY itemsales.sales DESC) AS sales_rank
	FROM (
		SELECT i.iid, i.category, SUM(l.quantity) AS sales
		FROM Item i
		JOIN LineItem l ON l.iid = i.iid
		GROUP BY i.iid, i.category
	) itemsales
) ranked
WHERE ranked.sales_rank <= 2`

const definitiveRatingsQuery = `
INSERT INTO DefinitiveRatings (cid, iid, rating)
SELECT r.cid, r.iid, r.rating
FROM Review r
JOIN Curator c ON c.cid = r.cid
JOIN PopularItems p ON p.iid = r.iid`

// Repopulate rebuilds PopularItems and DefinitiveRatings from the base
// tables in one transaction.
func (db *DB) Repopulate(ctx context.Context) (stats models.RepopulateStats, err error) {
	start := time.Now()
	defer func() { observe("repopulate", start, err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin repopulate transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	steps := []struct {
		name  string
		query string
	}{
		{"clear definitive ratings", `DELETE FROM DefinitiveRatings`},
		{"clear popular items", `DELETE FROM PopularItems`},
		{"insert popular items", popularItemsQuery},
		{"insert definitive ratings", definitiveRatingsQuery},
	}
	for _, step := range steps {
		if _, err = tx.ExecContext(ctx, step.query); err != nil {
			return stats, fmt.Errorf("failed to %s: %w", step.name, err)
		}
	}

	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM PopularItems`).Scan(&stats.PopularItems); err != nil {
		return stats, fmt.Errorf("failed to count popular items: %w", err)
	}
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM DefinitiveRatings`).Scan(&stats.DefinitiveRatings); err != nil {
		return stats, fmt.Errorf("failed to count definitive ratings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit repopulate: %w", err)
	}

	stats.CompletedAt = time.Now().UTC()
	stats.DurationMS = time.Since(start).Milliseconds()

	db.logger.Info().
		Int("popular_items", stats.PopularItems).
		Int("definitive_ratings", stats.DefinitiveRatings).
		Int64("duration_ms", stats.DurationMS).
		Msg("Snapshot tables repopulated")

	return stats, nil
}

// PopularItemIDs returns the current PopularItems snapshot in id order.
func (db *DB) PopularItemIDs(ctx context.Context) (ids []int, err error) {
	start := time.Now()
	defer func() { observe("popular_item_ids", start, err) }()

	rows, err := db.conn.QueryContext(ctx, `SELECT DISTINCT iid FROM PopularItems ORDER BY iid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular items: %w", err)
	}
	defer closeWithLog(rows, "rows")

	return scanIDs(rows)
}
