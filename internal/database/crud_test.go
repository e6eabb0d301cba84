// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/validation"
)

func TestInsertReview_Upsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	mustNoErr(t, db.InsertReview(ctx, &models.Review{CustomerID: 1, ItemID: 1, Rating: 3}))
	mustNoErr(t, db.InsertReview(ctx, &models.Review{CustomerID: 1, ItemID: 1, Rating: 9}))

	var rating, n int
	err := db.Conn().QueryRowContext(ctx,
		`SELECT MAX(rating), COUNT(*) FROM Review WHERE cid = 1 AND iid = 1`).Scan(&rating, &n)
	if err != nil {
		t.Fatalf("query error = %v", err)
	}
	if n != 1 || rating != 9 {
		t.Errorf("review rows = %d rating = %d, want 1 row rated 9", n, rating)
	}
}

func TestInsert_ValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"rating above 10", func() error {
			return db.InsertReview(ctx, &models.Review{CustomerID: 1, ItemID: 1, Rating: 11})
		}},
		{"negative rating", func() error {
			return db.InsertReview(ctx, &models.Review{CustomerID: 1, ItemID: 1, Rating: -1})
		}},
		{"item without category", func() error {
			return db.InsertItem(ctx, &models.Item{ID: 1, Price: 2})
		}},
		{"customer without name", func() error {
			return db.InsertCustomer(ctx, &models.Customer{ID: 1})
		}},
		{"zero quantity line", func() error {
			return db.InsertPurchase(ctx, &models.Purchase{
				ID: 1, CustomerID: 1, Lines: []models.LineItem{{ItemID: 1, Quantity: 0}},
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			var verr *validation.RequestValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *validation.RequestValidationError", err)
			}
		})
	}
}

func TestInsertPurchase_RollsBackOnDuplicateLine(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	err := db.InsertPurchase(ctx, &models.Purchase{
		ID:         7,
		CustomerID: 1,
		Lines:      []models.LineItem{{ItemID: 1, Quantity: 1}, {ItemID: 1, Quantity: 2}},
	})
	if err == nil {
		t.Fatal("InsertPurchase() with duplicate line items succeeded, want error")
	}

	var n int
	if err := db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM Purchase`).Scan(&n); err != nil {
		t.Fatalf("count error = %v", err)
	}
	if n != 0 {
		t.Errorf("purchases after rollback = %d, want 0", n)
	}
}

func TestSeedDemoData(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seeded, err := db.SeedDemoData(ctx)
	if err != nil {
		t.Fatalf("SeedDemoData() error = %v", err)
	}
	if !seeded {
		t.Fatal("SeedDemoData() on empty store = false, want true")
	}

	seeded, err = db.SeedDemoData(ctx)
	if err != nil {
		t.Fatalf("second SeedDemoData() error = %v", err)
	}
	if seeded {
		t.Error("second SeedDemoData() = true, want false")
	}

	stats, err := db.Repopulate(ctx)
	if err != nil {
		t.Fatalf("Repopulate() error = %v", err)
	}
	if stats.PopularItems == 0 || stats.DefinitiveRatings == 0 {
		t.Errorf("demo snapshot = %+v, want non-empty tables", stats)
	}
}
