// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package ratings

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		maxRaters     int
		maxItems      int
		wantMaxRaters int
		wantMaxItems  int
	}{
		{name: "regular capacities", maxRaters: 5, maxItems: 8, wantMaxRaters: 5, wantMaxItems: 8},
		{name: "zero capacities", maxRaters: 0, maxItems: 0, wantMaxRaters: 0, wantMaxItems: 0},
		{name: "negative capacities clamp to zero", maxRaters: -3, maxItems: -1, wantMaxRaters: 0, wantMaxItems: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := New(tt.maxRaters, tt.maxItems)
			if table.MaxRaters() != tt.wantMaxRaters {
				t.Errorf("MaxRaters() = %d, want %d", table.MaxRaters(), tt.wantMaxRaters)
			}
			if table.MaxItems() != tt.wantMaxItems {
				t.Errorf("MaxItems() = %d, want %d", table.MaxItems(), tt.wantMaxItems)
			}
			if table.NumRaters() != 0 || table.NumItems() != 0 {
				t.Errorf("new table has %d raters, %d items, want 0, 0", table.NumRaters(), table.NumItems())
			}
		})
	}
}

func TestTable_SetCapacityRejection(t *testing.T) {
	// Room for one person rating two items.
	table := New(1, 2)

	if err := table.Set(123, 55, 3); err != nil {
		t.Fatalf("Set(123, 55, 3) error = %v", err)
	}
	if err := table.Set(123, 66, 4); err != nil {
		t.Fatalf("Set(123, 66, 4) error = %v", err)
	}

	t.Run("third item is rejected", func(t *testing.T) {
		err := table.Set(123, 77, 1)
		if !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("Set(123, 77, 1) error = %v, want ErrCapacityExceeded", err)
		}
	})

	t.Run("second rater is rejected", func(t *testing.T) {
		err := table.Set(456, 88, 5)
		if !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("Set(456, 88, 5) error = %v, want ErrCapacityExceeded", err)
		}
	})

	t.Run("existing identities still accept ratings", func(t *testing.T) {
		if err := table.Set(123, 55, 9); err != nil {
			t.Errorf("Set(123, 55, 9) error = %v", err)
		}
		if got := table.Get(123, 55); got != Some(9) {
			t.Errorf("Get(123, 55) = %v, want 9", got)
		}
	})

	if table.NumRaters() != 1 || table.NumItems() != 2 {
		t.Errorf("counts = %d raters, %d items, want 1, 2", table.NumRaters(), table.NumItems())
	}
}

func TestTable_SetFailureLeavesStateUnchanged(t *testing.T) {
	// The rater dimension has room, the item dimension does not. A failing
	// call must not register the new rater either.
	table := New(3, 1)
	if err := table.Set(1, 10, 5); err != nil {
		t.Fatalf("Set(1, 10, 5) error = %v", err)
	}

	err := table.Set(2, 20, 5)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Set(2, 20, 5) error = %v, want ErrCapacityExceeded", err)
	}

	if table.NumRaters() != 1 {
		t.Errorf("NumRaters() = %d, want 1", table.NumRaters())
	}
	if table.HasRater(2) {
		t.Error("rater 2 was registered by a failed Set")
	}
	if _, ok := table.Row(2); ok {
		t.Error("Row(2) found a rater registered by a failed Set")
	}
}

func TestTable_SetRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "zero is legal", value: 0, wantErr: false},
		{name: "ten is legal", value: 10, wantErr: false},
		{name: "negative", value: -1, wantErr: true},
		{name: "above ten", value: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := New(1, 1)
			err := table.Set(1, 1, tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrRatingOutOfRange) {
					t.Errorf("Set() error = %v, want ErrRatingOutOfRange", err)
				}
				if table.NumRaters() != 0 || table.NumItems() != 0 {
					t.Error("rejected rating registered identities")
				}
				return
			}
			if err != nil {
				t.Errorf("Set() error = %v", err)
			}
		})
	}
}

func TestTable_Overwrite(t *testing.T) {
	once := New(4, 5)
	if err := once.Set(13, 268, 6); err != nil {
		t.Fatal(err)
	}

	twice := New(4, 5)
	if err := twice.Set(13, 268, 7); err != nil {
		t.Fatal(err)
	}
	if err := twice.Set(13, 268, 6); err != nil {
		t.Fatal(err)
	}

	if twice.NumRaters() != once.NumRaters() || twice.NumItems() != once.NumItems() {
		t.Errorf("overwrite changed registration counts: got %d/%d, want %d/%d",
			twice.NumRaters(), twice.NumItems(), once.NumRaters(), once.NumItems())
	}
	if got := twice.Get(13, 268); got != Some(6) {
		t.Errorf("Get(13, 268) = %v, want 6", got)
	}
}

func TestTable_Get(t *testing.T) {
	table := New(5, 10)

	if got := table.Get(13, 152); got.Valid {
		t.Errorf("Get on empty table = %v, want no rating", got)
	}

	if err := table.Set(13, 152, 10); err != nil {
		t.Fatal(err)
	}
	if err := table.Set(16, 159, 0); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		rater int
		item  int
		want  Rating
	}{
		{name: "stored rating", rater: 13, item: 152, want: Some(10)},
		{name: "zero is a rating", rater: 16, item: 159, want: Some(0)},
		{name: "known rater and item, unset cell", rater: 13, item: 159, want: Rating{}},
		{name: "unknown rater", rater: 99, item: 152, want: Rating{}},
		{name: "unknown item", rater: 13, item: 999, want: Rating{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Get(tt.rater, tt.item); got != tt.want {
				t.Errorf("Get(%d, %d) = %v, want %v", tt.rater, tt.item, got, tt.want)
			}
		})
	}
}

func TestTable_Row(t *testing.T) {
	table := New(4, 5)

	if _, ok := table.Row(13); ok {
		t.Error("Row(13) on empty table reported found")
	}

	for _, s := range []Triple{
		{RaterID: 13, ItemID: 152, Value: 10},
		{RaterID: 13, ItemID: 268, Value: 7},
		{RaterID: 13, ItemID: 268, Value: 6},
		{RaterID: 20, ItemID: 300, Value: 2},
	} {
		if err := table.Set(s.RaterID, s.ItemID, s.Value); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("row follows item registration order", func(t *testing.T) {
		row, ok := table.Row(13)
		if !ok {
			t.Fatal("Row(13) not found")
		}
		want := []Rating{Some(10), Some(6), {}}
		if len(row) != len(want) {
			t.Fatalf("len(Row(13)) = %d, want %d", len(row), len(want))
		}
		for i := range want {
			if row[i] != want[i] {
				t.Errorf("Row(13)[%d] = %v, want %v", i, row[i], want[i])
			}
		}
	})

	t.Run("row length tracks registered items", func(t *testing.T) {
		row, _ := table.Row(20)
		if len(row) != table.NumItems() {
			t.Errorf("len(Row(20)) = %d, want %d", len(row), table.NumItems())
		}
	})

	t.Run("unknown rater is not found", func(t *testing.T) {
		if _, ok := table.Row(14); ok {
			t.Error("Row(14) reported found for unregistered rater")
		}
	})

	t.Run("row is a copy", func(t *testing.T) {
		row, _ := table.Row(13)
		row[0] = Some(1)
		if got := table.Get(13, 152); got != Some(10) {
			t.Errorf("mutating Row result changed table: Get(13, 152) = %v", got)
		}
	})
}

func TestTable_RegisteredButEmptyRowIsFound(t *testing.T) {
	// Rater 2 never rated item 100 but is registered, so its row is found
	// and unset in that column.
	table := New(2, 2)
	if err := table.Set(1, 100, 4); err != nil {
		t.Fatal(err)
	}
	if err := table.Set(2, 200, 4); err != nil {
		t.Fatal(err)
	}

	row, ok := table.Row(2)
	if !ok {
		t.Fatal("Row(2) not found")
	}
	if row[0].Valid {
		t.Errorf("Row(2)[0] = %v, want unset", row[0])
	}
}

func TestTable_IDs(t *testing.T) {
	table := New(3, 3)
	for _, s := range []Triple{
		{RaterID: 9, ItemID: 3, Value: 1},
		{RaterID: 4, ItemID: 1, Value: 1},
		{RaterID: 9, ItemID: 2, Value: 1},
	} {
		if err := table.Set(s.RaterID, s.ItemID, s.Value); err != nil {
			t.Fatal(err)
		}
	}

	raters := table.RaterIDs()
	if len(raters) != 2 || raters[0] != 9 || raters[1] != 4 {
		t.Errorf("RaterIDs() = %v, want [9 4]", raters)
	}
	items := table.ItemIDs()
	if len(items) != 3 || items[0] != 3 || items[1] != 1 || items[2] != 2 {
		t.Errorf("ItemIDs() = %v, want [3 1 2]", items)
	}
}

func TestCapacityInvariant(t *testing.T) {
	table := New(2, 3)

	// Deterministic pseudo-random walk over a larger identity space.
	seq := []Triple{}
	for i := 0; i < 50; i++ {
		seq = append(seq, Triple{RaterID: (i * 7) % 5, ItemID: (i * 11) % 7, Value: i % 11})
	}

	for _, s := range seq {
		beforeRaters, beforeItems := table.NumRaters(), table.NumItems()
		err := table.Set(s.RaterID, s.ItemID, s.Value)

		if table.NumRaters() > table.MaxRaters() || table.NumItems() > table.MaxItems() {
			t.Fatalf("capacity exceeded: %d/%d raters, %d/%d items",
				table.NumRaters(), table.MaxRaters(), table.NumItems(), table.MaxItems())
		}
		if err != nil {
			if !errors.Is(err, ErrCapacityExceeded) {
				t.Fatalf("Set(%d, %d, %d) unexpected error %v", s.RaterID, s.ItemID, s.Value, err)
			}
			if table.NumRaters() != beforeRaters || table.NumItems() != beforeItems {
				t.Fatalf("failed Set changed counts")
			}
		}
	}
}

func TestFromTriples(t *testing.T) {
	triples := []Triple{
		{RaterID: 1, ItemID: 10, Value: 8},
		{RaterID: 2, ItemID: 10, Value: 6},
		{RaterID: 2, ItemID: 20, Value: 5},
		{RaterID: 1, ItemID: 20, Value: 5},
	}

	table, err := FromTriples(triples)
	if err != nil {
		t.Fatalf("FromTriples() error = %v", err)
	}
	if table.MaxRaters() != 2 || table.MaxItems() != 2 {
		t.Errorf("capacities = %d, %d, want 2, 2", table.MaxRaters(), table.MaxItems())
	}
	if got := table.Get(2, 20); got != Some(5) {
		t.Errorf("Get(2, 20) = %v, want 5", got)
	}

	t.Run("out of range triple fails", func(t *testing.T) {
		_, err := FromTriples([]Triple{{RaterID: 1, ItemID: 1, Value: 42}})
		if !errors.Is(err, ErrRatingOutOfRange) {
			t.Errorf("FromTriples() error = %v, want ErrRatingOutOfRange", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		table, err := FromTriples(nil)
		if err != nil {
			t.Fatalf("FromTriples(nil) error = %v", err)
		}
		if table.NumRaters() != 0 {
			t.Errorf("NumRaters() = %d, want 0", table.NumRaters())
		}
	})
}

func TestRating_String(t *testing.T) {
	if got := (Rating{}).String(); got != "-" {
		t.Errorf("unset String() = %q, want %q", got, "-")
	}
	if got := Some(0).String(); got != "0" {
		t.Errorf("Some(0).String() = %q, want %q", got, "0")
	}
}
