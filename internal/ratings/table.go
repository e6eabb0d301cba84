// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package ratings

import (
	"errors"
	"fmt"
)

const (
	// MinRating is the lowest legal rating value.
	MinRating = 0

	// MaxRating is the highest legal rating value.
	MaxRating = 10
)

var (
	// ErrCapacityExceeded is returned by Set when a new rater or item would
	// have to be registered in a dimension that is already full.
	ErrCapacityExceeded = errors.New("rating table capacity exceeded")

	// ErrRatingOutOfRange is returned by Set for values outside [MinRating, MaxRating].
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// Rating is a single cell of a Table. The zero value means "no rating".
type Rating struct {
	// Value is the rating in [MinRating, MaxRating]. Only meaningful when Valid.
	Value int `json:"value"`

	// Valid reports whether the cell holds a rating.
	Valid bool `json:"valid"`
}

// Some returns a set Rating holding v.
func Some(v int) Rating {
	return Rating{Value: v, Valid: true}
}

// String returns the rating value, or "-" for an unset cell.
func (r Rating) String() string {
	if !r.Valid {
		return "-"
	}
	return fmt.Sprintf("%d", r.Value)
}

// Triple is one (rater, item, rating) record as produced by the rating source.
type Triple struct {
	RaterID int `json:"rater_id"`
	ItemID  int `json:"item_id"`
	Value   int `json:"rating"`
}

// Table is a capacity-bounded sparse matrix of ratings.
type Table struct {
	maxRaters int
	maxItems  int

	// raterIDs and itemIDs map slot -> identity, in registration order.
	raterIDs []int
	itemIDs  []int

	// raterSlots and itemSlots map identity -> slot.
	raterSlots map[int]int
	itemSlots  map[int]int

	// cells[raterSlot][itemSlot]
	cells [][]Rating
}

// New creates an empty table with room for maxRaters raters and maxItems items.
// Negative capacities are treated as zero.
func New(maxRaters, maxItems int) *Table {
	if maxRaters < 0 {
		maxRaters = 0
	}
	if maxItems < 0 {
		maxItems = 0
	}

	cells := make([][]Rating, maxRaters)
	for i := range cells {
		cells[i] = make([]Rating, maxItems)
	}

	return &Table{
		maxRaters:  maxRaters,
		maxItems:   maxItems,
		raterIDs:   make([]int, 0, maxRaters),
		itemIDs:    make([]int, 0, maxItems),
		raterSlots: make(map[int]int, maxRaters),
		itemSlots:  make(map[int]int, maxItems),
		cells:      cells,
	}
}

// FromTriples builds a table sized exactly to the distinct raters and items in
// triples and loads every triple into it, in order.
func FromTriples(triples []Triple) (*Table, error) {
	raters := make(map[int]struct{})
	items := make(map[int]struct{})
	for _, t := range triples {
		raters[t.RaterID] = struct{}{}
		items[t.ItemID] = struct{}{}
	}

	table := New(len(raters), len(items))
	if err := table.Load(triples); err != nil {
		return nil, err
	}
	return table, nil
}

// MaxRaters returns the rater capacity.
func (t *Table) MaxRaters() int { return t.maxRaters }

// MaxItems returns the item capacity.
func (t *Table) MaxItems() int { return t.maxItems }

// NumRaters returns the number of registered raters.
func (t *Table) NumRaters() int { return len(t.raterIDs) }

// NumItems returns the number of registered items.
func (t *Table) NumItems() int { return len(t.itemIDs) }

// Set records that raterID gave itemID the rating value, registering either
// identity if it has not been seen before. Any previous rating for the pair is
// overwritten.
//
// If an unknown identity cannot be registered because its dimension is full,
// Set returns an error wrapping ErrCapacityExceeded and the table is not
// modified. Values outside [MinRating, MaxRating] are rejected with
// ErrRatingOutOfRange.
func (t *Table) Set(raterID, itemID, value int) error {
	if value < MinRating || value > MaxRating {
		return fmt.Errorf("%w: rater %d item %d value %d", ErrRatingOutOfRange, raterID, itemID, value)
	}

	// Both dimensions are checked before either is registered.
	p, raterKnown := t.raterSlots[raterID]
	if !raterKnown && len(t.raterIDs) >= t.maxRaters {
		return fmt.Errorf("%w: no room for rater %d (max %d)", ErrCapacityExceeded, raterID, t.maxRaters)
	}
	i, itemKnown := t.itemSlots[itemID]
	if !itemKnown && len(t.itemIDs) >= t.maxItems {
		return fmt.Errorf("%w: no room for item %d (max %d)", ErrCapacityExceeded, itemID, t.maxItems)
	}

	if !raterKnown {
		p = len(t.raterIDs)
		t.raterIDs = append(t.raterIDs, raterID)
		t.raterSlots[raterID] = p
	}
	if !itemKnown {
		i = len(t.itemIDs)
		t.itemIDs = append(t.itemIDs, itemID)
		t.itemSlots[itemID] = i
	}

	t.cells[p][i] = Some(value)
	return nil
}

// Load applies Set to every triple in order and stops at the first error.
func (t *Table) Load(triples []Triple) error {
	for _, tr := range triples {
		if err := t.Set(tr.RaterID, tr.ItemID, tr.Value); err != nil {
			return fmt.Errorf("load triple: %w", err)
		}
	}
	return nil
}

// Get returns the rating raterID gave itemID. The result is unset if the pair
// has no rating or either identity is unknown.
func (t *Table) Get(raterID, itemID int) Rating {
	p, ok := t.raterSlots[raterID]
	if !ok {
		return Rating{}
	}
	i, ok := t.itemSlots[itemID]
	if !ok {
		return Rating{}
	}
	return t.cells[p][i]
}

// Row returns every rating by raterID, one per registered item in item
// registration order. The second result is false if raterID is not
// registered, which callers must distinguish from a registered rater whose
// row is entirely unset.
//
// The returned slice is a copy.
func (t *Table) Row(raterID int) ([]Rating, bool) {
	p, ok := t.raterSlots[raterID]
	if !ok {
		return nil, false
	}

	row := make([]Rating, len(t.itemIDs))
	copy(row, t.cells[p][:len(t.itemIDs)])
	return row, true
}

// HasRater reports whether raterID is registered.
func (t *Table) HasRater(raterID int) bool {
	_, ok := t.raterSlots[raterID]
	return ok
}

// RaterIDs returns the registered raters in registration order.
func (t *Table) RaterIDs() []int {
	out := make([]int, len(t.raterIDs))
	copy(out, t.raterIDs)
	return out
}

// ItemIDs returns the registered items in registration order. This is the
// column order of every slice returned by Row.
func (t *Table) ItemIDs() []int {
	out := make([]int, len(t.itemIDs))
	copy(out, t.itemIDs)
	return out
}
