// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

// Package ratings provides a bounded sparse rating matrix keyed by two
// independent identity spaces: raters (customers and curators) and items.
//
// # Slots
//
// A Table is created with fixed capacities. The first time a rater or item
// identifier is seen it is assigned the next free slot in its dimension.
// Slots are never released, so slot order is registration order, and rows
// returned by Row are always laid out in the order items were first rated.
//
// Once a dimension is full, ratings can still be written for identities that
// are already registered, but any rating that would introduce a new identity
// in the full dimension fails with ErrCapacityExceeded and leaves the table
// untouched.
//
// # Cells
//
// Each cell holds a Rating, which is either unset or an integer in [0, 10].
// "No rating" is an explicit state of the cell rather than a sentinel value,
// because 0 is a legal rating.
//
// # Usage
//
//	table := ratings.New(len(raters), len(items))
//	if err := table.Set(curatorID, itemID, 8); err != nil {
//	    return err
//	}
//	row, ok := table.Row(customerID)
//	if !ok {
//	    // customer never rated anything in this table
//	}
//
// # Thread Safety
//
// A Table is not safe for concurrent mutation. It is built fresh for a single
// recommendation computation and owned exclusively by it.
package ratings
