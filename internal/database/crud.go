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
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/validation"
)

// InsertItem adds a catalogue item.
func (db *DB) InsertItem(ctx context.Context, item *models.Item) (err error) {
	if verr := validation.ValidateStruct(item); verr != nil {
		return verr
	}
	start := time.Now()
	defer func() { observe("insert_item", start, err) }()

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO Item (iid, category, price) VALUES ($1, $2, $3)`,
		item.ID, item.Category, item.Price)
	if err != nil {
		return fmt.Errorf("failed to insert item %d: %w", item.ID, err)
	}
	return nil
}

// InsertCustomer adds a customer.
func (db *DB) InsertCustomer(ctx context.Context, customer *models.Customer) (err error) {
	if verr := validation.ValidateStruct(customer); verr != nil {
		return verr
	}
	start := time.Now()
	defer func() { observe("insert_customer", start, err) }()

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO Customer (cid, name) VALUES ($1, $2)`,
		customer.ID, customer.Name)
	if err != nil {
		return fmt.Errorf("failed to insert customer %d: %w", customer.ID, err)
	}
	return nil
}

// InsertCurator marks an existing customer as a curator.
func (db *DB) InsertCurator(ctx context.Context, customerID int) (err error) {
	start := time.Now()
	defer func() { observe("insert_curator", start, err) }()

	_, err = db.conn.ExecContext(ctx, `INSERT INTO Curator (cid) VALUES ($1)`, customerID)
	if err != nil {
		return fmt.Errorf("failed to insert curator %d: %w", customerID, err)
	}
	return nil
}

// InsertPurchase records a purchase and its line items atomically. A zero
// Date is stamped with the current time.
func (db *DB) InsertPurchase(ctx context.Context, purchase *models.Purchase) (err error) {
	if verr := validation.ValidateStruct(purchase); verr != nil {
		return verr
	}
	start := time.Now()
	defer func() { observe("insert_purchase", start, err) }()

	if purchase.Date.IsZero() {
		purchase.Date = time.Now().UTC()
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin purchase transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO Purchase (pid, cid, d) VALUES ($1, $2, $3)`,
		purchase.ID, purchase.CustomerID, purchase.Date); err != nil {
		return fmt.Errorf("failed to insert purchase %d: %w", purchase.ID, err)
	}

	for _, line := range purchase.Lines {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO LineItem (pid, iid, quantity) VALUES ($1, $2, $3)`,
			purchase.ID, line.ItemID, line.Quantity); err != nil {
			return fmt.Errorf("failed to insert line item %d of purchase %d: %w", line.ItemID, purchase.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit purchase %d: %w", purchase.ID, err)
	}
	return nil
}

// InsertReview adds a review, replacing the customer's earlier rating of
// the same item.
func (db *DB) InsertReview(ctx context.Context, review *models.Review) (err error) {
	if verr := validation.ValidateStruct(review); verr != nil {
		return verr
	}
	start := time.Now()
	defer func() { observe("insert_review", start, err) }()

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO Review (cid, iid, rating) VALUES ($1, $2, $3)
		ON CONFLICT (cid, iid) DO UPDATE SET rating = EXCLUDED.rating`,
		review.CustomerID, review.ItemID, review.Rating)
	if err != nil {
		return fmt.Errorf("failed to insert review (%d, %d): %w", review.CustomerID, review.ItemID, err)
	}
	return nil
}

// isEmpty reports whether the catalogue has no items.
func (db *DB) isEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM Item`).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count items: %w", err)
	}
	return n == 0, nil
}
