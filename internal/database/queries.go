// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/ratings"
)

// CuratorIDs returns every curator in ascending id order. The order is the
// candidate order of the similarity search, so it settles distance ties.
func (db *DB) CuratorIDs(ctx context.Context) (ids []int, err error) {
	start := time.Now()
	defer func() { observe("curator_ids", start, err) }()

	rows, err := db.conn.QueryContext(ctx, `SELECT cid FROM Curator ORDER BY cid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query curators: %w", err)
	}
	defer closeWithLog(rows, "rows")

	return scanIDs(rows)
}

// RatingTriples returns the definitive curator ratings together with the
// customer's own reviews of popular items, ordered by rater then item.
func (db *DB) RatingTriples(ctx context.Context, customerID int) (triples []ratings.Triple, err error) {
	start := time.Now()
	defer func() { observe("rating_triples", start, err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT cid, iid, rating FROM DefinitiveRatings
		UNION
		SELECT r.cid, r.iid, r.rating
		FROM Review r
		JOIN PopularItems p ON p.iid = r.iid
		WHERE r.cid = $1
		ORDER BY cid, iid`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rating triples: %w", err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		var t ratings.Triple
		if err = rows.Scan(&t.RaterID, &t.ItemID, &t.Value); err != nil {
			return nil, fmt.Errorf("failed to scan rating triple: %w", err)
		}
		triples = append(triples, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rating triples: %w", err)
	}
	return triples, nil
}

// PopularItemAverages returns the average review rating of each reviewed
// popular item, best first, ties by ascending item id.
func (db *DB) PopularItemAverages(ctx context.Context) (scores []models.ItemScore, err error) {
	start := time.Now()
	defer func() { observe("popular_item_averages", start, err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT r.iid, AVG(CAST(r.rating AS DOUBLE PRECISION)) AS avg_rating
		FROM Review r
		WHERE r.iid IN (SELECT iid FROM PopularItems)
		GROUP BY r.iid
		ORDER BY avg_rating DESC, r.iid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular item averages: %w", err)
	}
	defer closeWithLog(rows, "rows")

	return scanScores(rows)
}

// UnboughtRatings returns rater's reviews on items that customer never
// purchased, highest rating first, ties by ascending item id.
func (db *DB) UnboughtRatings(ctx context.Context, raterID, customerID int) (scores []models.ItemScore, err error) {
	start := time.Now()
	defer func() { observe("unbought_ratings", start, err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT r.iid, CAST(r.rating AS DOUBLE PRECISION) AS rating
		FROM Review r
		WHERE r.cid = $1
		AND r.iid NOT IN (
			SELECT l.iid
			FROM Purchase p
			JOIN LineItem l ON l.pid = p.pid
			WHERE p.cid = $2
		)
		ORDER BY rating DESC, r.iid`, raterID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unbought ratings: %w", err)
	}
	defer closeWithLog(rows, "rows")

	return scanScores(rows)
}

// CustomerExists reports whether cid is a known customer.
func (db *DB) CustomerExists(ctx context.Context, customerID int) (exists bool, err error) {
	start := time.Now()
	defer func() { observe("customer_exists", start, err) }()

	err = db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM Customer WHERE cid = $1)`, customerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up customer %d: %w", customerID, err)
	}
	return exists, nil
}

func scanIDs(rows *sql.Rows) ([]int, error) {
	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ids: %w", err)
	}
	return ids, nil
}

func scanScores(rows *sql.Rows) ([]models.ItemScore, error) {
	var scores []models.ItemScore
	for rows.Next() {
		var s models.ItemScore
		if err := rows.Scan(&s.ItemID, &s.Score); err != nil {
			return nil, fmt.Errorf("failed to scan item score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate item scores: %w", err)
	}
	return scores, nil
}
