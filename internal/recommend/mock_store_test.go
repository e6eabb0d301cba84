// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package recommend

import (
	"context"
	"sync"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/ratings"
)

// mockStore implements Store for testing.
type mockStore struct {
	mu sync.Mutex

	curators  []int
	customers map[int]bool
	triples   []ratings.Triple
	averages  []models.ItemScore
	unbought  map[[2]int][]models.ItemScore
	stats     models.RepopulateStats

	err            error
	repopulateErr  error
	repopulateHook func()
	averagesHook   func()

	averagesCalls   int
	repopulateCalls int
}

func (m *mockStore) CuratorIDs(ctx context.Context) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.curators, nil
}

func (m *mockStore) RatingTriples(ctx context.Context, customerID int) ([]ratings.Triple, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.triples, nil
}

// PopularItemAverages reads the averages before running averagesHook, so a
// hook that blocks simulates a query that saw the pre-refresh snapshot.
func (m *mockStore) PopularItemAverages(ctx context.Context) ([]models.ItemScore, error) {
	m.mu.Lock()
	m.averagesCalls++
	err := m.err
	averages := m.averages
	hook := m.averagesHook
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return averages, nil
}

func (m *mockStore) UnboughtRatings(ctx context.Context, raterID, customerID int) ([]models.ItemScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.unbought[[2]int{raterID, customerID}], nil
}

func (m *mockStore) CustomerExists(ctx context.Context, customerID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	return m.customers[customerID], nil
}

func (m *mockStore) Repopulate(ctx context.Context) (models.RepopulateStats, error) {
	m.mu.Lock()
	m.repopulateCalls++
	hook := m.repopulateHook
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	if m.repopulateErr != nil {
		return models.RepopulateStats{}, m.repopulateErr
	}
	return m.stats, nil
}

func (m *mockStore) setErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// newShopStore returns a store where customer 1 rated items 1 and 2 as
// 8 and 5, curator 10 rated them 6 and 4 (distance 1.5) and curator 11
// rated item 1 as 7 (distance 1.0).
func newShopStore() *mockStore {
	return &mockStore{
		curators:  []int{10, 11},
		customers: map[int]bool{1: true, 2: true, 10: true, 11: true},
		triples: []ratings.Triple{
			{RaterID: 1, ItemID: 1, Value: 8},
			{RaterID: 1, ItemID: 2, Value: 5},
			{RaterID: 10, ItemID: 1, Value: 6},
			{RaterID: 10, ItemID: 2, Value: 4},
			{RaterID: 11, ItemID: 1, Value: 7},
		},
		averages: []models.ItemScore{
			{ItemID: 4, Score: 6},
			{ItemID: 2, Score: 9},
			{ItemID: 1, Score: 9},
			{ItemID: 3, Score: 7.5},
		},
		unbought: map[[2]int][]models.ItemScore{
			{11, 1}: {{ItemID: 7, Score: 4}, {ItemID: 5, Score: 9}, {ItemID: 6, Score: 9}},
		},
		stats: models.RepopulateStats{PopularItems: 4, DefinitiveRatings: 3},
	}
}
