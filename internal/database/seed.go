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

// demoCatalogue is a small shop with three categories, two curators and
// enough purchases for every category to have top and second sellers.
var demoCatalogue = struct {
	items     []models.Item
	customers []models.Customer
	curators  []int
	purchases []models.Purchase
	reviews   []models.Review
}{
	items: []models.Item{
		{ID: 1, Category: "Book", Price: 12.99},
		{ID: 2, Category: "Book", Price: 24.50},
		{ID: 3, Category: "Book", Price: 8.00},
		{ID: 4, Category: "Toy", Price: 19.99},
		{ID: 5, Category: "Toy", Price: 5.25},
		{ID: 6, Category: "Toy", Price: 44.00},
		{ID: 7, Category: "Garden", Price: 31.75},
		{ID: 8, Category: "Garden", Price: 3.49},
		{ID: 9, Category: "Garden", Price: 15.00},
	},
	customers: []models.Customer{
		{ID: 1, Name: "Ada"},
		{ID: 2, Name: "Ben"},
		{ID: 3, Name: "Cleo"},
		{ID: 10, Name: "Dana"},
		{ID: 11, Name: "Eli"},
	},
	curators: []int{10, 11},
	purchases: []models.Purchase{
		{ID: 100, CustomerID: 1, Lines: []models.LineItem{{ItemID: 1, Quantity: 3}, {ItemID: 4, Quantity: 1}}},
		{ID: 101, CustomerID: 2, Lines: []models.LineItem{{ItemID: 2, Quantity: 2}, {ItemID: 5, Quantity: 4}}},
		{ID: 102, CustomerID: 3, Lines: []models.LineItem{{ItemID: 3, Quantity: 1}, {ItemID: 7, Quantity: 2}}},
		{ID: 103, CustomerID: 10, Lines: []models.LineItem{{ItemID: 6, Quantity: 2}, {ItemID: 8, Quantity: 5}}},
		{ID: 104, CustomerID: 11, Lines: []models.LineItem{{ItemID: 9, Quantity: 1}, {ItemID: 1, Quantity: 1}}},
	},
	reviews: []models.Review{
		{CustomerID: 1, ItemID: 1, Rating: 8},
		{CustomerID: 1, ItemID: 4, Rating: 5},
		{CustomerID: 2, ItemID: 2, Rating: 6},
		{CustomerID: 2, ItemID: 5, Rating: 9},
		{CustomerID: 3, ItemID: 7, Rating: 7},
		{CustomerID: 10, ItemID: 1, Rating: 7},
		{CustomerID: 10, ItemID: 2, Rating: 9},
		{CustomerID: 10, ItemID: 5, Rating: 4},
		{CustomerID: 10, ItemID: 7, Rating: 10},
		{CustomerID: 10, ItemID: 9, Rating: 8},
		{CustomerID: 11, ItemID: 1, Rating: 3},
		{CustomerID: 11, ItemID: 4, Rating: 9},
		{CustomerID: 11, ItemID: 8, Rating: 6},
		{CustomerID: 11, ItemID: 6, Rating: 10},
	},
}

// SeedDemoData loads the demo catalogue into an empty store. It returns
// false without writing anything when the store already holds items.
func (db *DB) SeedDemoData(ctx context.Context) (bool, error) {
	empty, err := db.isEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		db.logger.Debug().Msg("Store already populated, skipping demo data")
		return false, nil
	}

	c := demoCatalogue
	for i := range c.items {
		if err := db.InsertItem(ctx, &c.items[i]); err != nil {
			return false, fmt.Errorf("seed: %w", err)
		}
	}
	for i := range c.customers {
		if err := db.InsertCustomer(ctx, &c.customers[i]); err != nil {
			return false, fmt.Errorf("seed: %w", err)
		}
	}
	for _, cid := range c.curators {
		if err := db.InsertCurator(ctx, cid); err != nil {
			return false, fmt.Errorf("seed: %w", err)
		}
	}
	base := time.Date(2021, time.November, 1, 12, 0, 0, 0, time.UTC)
	for i := range c.purchases {
		p := c.purchases[i]
		p.Date = base.Add(time.Duration(i) * 24 * time.Hour)
		if err := db.InsertPurchase(ctx, &p); err != nil {
			return false, fmt.Errorf("seed: %w", err)
		}
	}
	for i := range c.reviews {
		if err := db.InsertReview(ctx, &c.reviews[i]); err != nil {
			return false, fmt.Errorf("seed: %w", err)
		}
	}

	db.logger.Info().
		Int("items", len(c.items)).
		Int("customers", len(c.customers)).
		Int("purchases", len(c.purchases)).
		Int("reviews", len(c.reviews)).
		Msg("Demo data loaded")
	return true, nil
}
