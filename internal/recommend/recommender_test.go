// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package recommend

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/similarity"
)

func newTestRecommender(t *testing.T, store Store, cfg *Config) *Recommender {
	t.Helper()
	r, err := New(store, cfg, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	if _, err := New(nil, nil, zerolog.Nop()); err == nil {
		t.Error("New(nil store) succeeded, want error")
	}

	bad := DefaultConfig()
	bad.MaxK = 0
	if _, err := New(newShopStore(), bad, zerolog.Nop()); err == nil {
		t.Error("New() with invalid config succeeded, want error")
	}

	r := newTestRecommender(t, newShopStore(), nil)
	if got := r.Config(); got != *DefaultConfig() {
		t.Errorf("Config() = %+v, want defaults", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero cache ttl allowed", func(c *Config) { c.CacheTTL = 0 }, false},
		{"max k zero", func(c *Config) { c.MaxK = 0 }, true},
		{"default above max", func(c *Config) { c.DefaultK = c.MaxK + 1 }, true},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }, true},
		{"zero timeout", func(c *Config) { c.QueryTimeout = 0 }, true},
		{"zero breaker failures", func(c *Config) { c.BreakerMaxFailures = 0 }, true},
		{"zero breaker timeout", func(c *Config) { c.BreakerTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeneric(t *testing.T) {
	r := newTestRecommender(t, newShopStore(), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		k    int
		want []int
	}{
		{"tie broken by id", 2, []int{1, 2}},
		{"fewer than k", 10, []int{1, 2, 3, 4}},
		{"single", 1, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Generic(ctx, tt.k)
			if err != nil {
				t.Fatalf("Generic() error = %v", err)
			}
			if !equalInts(got, tt.want) {
				t.Errorf("Generic(%d) = %v, want %v", tt.k, got, tt.want)
			}
		})
	}
}

func TestGeneric_InvalidK(t *testing.T) {
	r := newTestRecommender(t, newShopStore(), nil)

	for _, k := range []int{0, -3} {
		if _, err := r.Generic(context.Background(), k); !errors.Is(err, ErrInvalidK) {
			t.Errorf("Generic(%d) error = %v, want ErrInvalidK", k, err)
		}
		if _, err := r.Recommend(context.Background(), 1, k); !errors.Is(err, ErrInvalidK) {
			t.Errorf("Recommend(1, %d) error = %v, want ErrInvalidK", k, err)
		}
	}
}

func TestGeneric_ClampsToMaxK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxK = 2
	cfg.DefaultK = 1
	r := newTestRecommender(t, newShopStore(), cfg)

	got, err := r.Generic(context.Background(), 50)
	if err != nil {
		t.Fatalf("Generic() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Generic(50) returned %d items, want MaxK=2", len(got))
	}
}

func TestGeneric_CachesUntilRepopulate(t *testing.T) {
	store := newShopStore()
	r := newTestRecommender(t, store, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := r.Generic(ctx, 2); err != nil {
			t.Fatalf("Generic() error = %v", err)
		}
	}
	if store.averagesCalls != 1 {
		t.Errorf("store queried %d times, want 1", store.averagesCalls)
	}

	if _, err := r.Repopulate(ctx); err != nil {
		t.Fatalf("Repopulate() error = %v", err)
	}
	if _, err := r.Generic(ctx, 2); err != nil {
		t.Fatalf("Generic() error = %v", err)
	}
	if store.averagesCalls != 2 {
		t.Errorf("store queried %d times after repopulate, want 2", store.averagesCalls)
	}

	stats := r.Stats()
	if stats.CacheHits != 2 || stats.CacheMisses != 2 {
		t.Errorf("cache hits/misses = %d/%d, want 2/2", stats.CacheHits, stats.CacheMisses)
	}
	if stats.CacheHitRate != 50 {
		t.Errorf("CacheHitRate = %v, want 50", stats.CacheHitRate)
	}
}

func TestGeneric_InFlightFetchDoesNotOutliveRepopulate(t *testing.T) {
	store := newShopStore()
	store.averages = []models.ItemScore{{ItemID: 1, Score: 9}}

	entered := make(chan struct{})
	release := make(chan struct{})
	store.averagesHook = func() {
		close(entered)
		<-release
	}

	r := newTestRecommender(t, store, nil)
	ctx := context.Background()

	type result struct {
		items []int
		err   error
	}
	inFlight := make(chan result, 1)
	go func() {
		items, err := r.Generic(ctx, 1)
		inFlight <- result{items, err}
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch never reached the store")
	}

	// The snapshot changes and is refreshed while the first fetch is
	// still holding the old averages.
	store.mu.Lock()
	store.averages = []models.ItemScore{{ItemID: 2, Score: 9}}
	store.averagesHook = nil
	store.mu.Unlock()
	if _, err := r.Repopulate(ctx); err != nil {
		t.Fatalf("Repopulate() error = %v", err)
	}
	close(release)

	res := <-inFlight
	if res.err != nil {
		t.Fatalf("in-flight Generic() error = %v", res.err)
	}
	if !equalInts(res.items, []int{1}) {
		t.Errorf("in-flight Generic() = %v, want [1]", res.items)
	}

	got, err := r.Generic(ctx, 1)
	if err != nil {
		t.Fatalf("Generic() error = %v", err)
	}
	if !equalInts(got, []int{2}) {
		t.Errorf("Generic() after repopulate = %v, want refreshed [2]", got)
	}
}

func TestGeneric_CacheDisabled(t *testing.T) {
	store := newShopStore()
	cfg := DefaultConfig()
	cfg.CacheTTL = 0
	r := newTestRecommender(t, store, cfg)

	for i := 0; i < 2; i++ {
		if _, err := r.Generic(context.Background(), 2); err != nil {
			t.Fatalf("Generic() error = %v", err)
		}
	}
	if store.averagesCalls != 2 {
		t.Errorf("store queried %d times, want 2", store.averagesCalls)
	}
}

func TestRecommend_FromMostSimilarCurator(t *testing.T) {
	r := newTestRecommender(t, newShopStore(), nil)

	rec, err := r.Recommend(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.Source != models.SourceCurator || rec.CuratorID != 11 {
		t.Errorf("source = %q curator = %d, want curator 11", rec.Source, rec.CuratorID)
	}
	// Curator 11 rated 5 and 6 as 9: tie broken by id.
	if want := []int{5, 6}; !equalInts(rec.Items, want) {
		t.Errorf("Items = %v, want %v", rec.Items, want)
	}
	if rec.K != 2 || rec.CustomerID != 1 {
		t.Errorf("K = %d CustomerID = %d, want 2 and 1", rec.K, rec.CustomerID)
	}
}

func TestRecommend_Fallbacks(t *testing.T) {
	tests := []struct {
		name       string
		customerID int
		mutate     func(*mockStore)
		wantReason string
	}{
		{"unknown customer", 99, func(*mockStore) {}, FallbackUnknownCustomer},
		{"no overlapping curator", 2, func(*mockStore) {}, FallbackNoSimilarCurator},
		{"everything bought", 1, func(m *mockStore) { m.unbought = nil }, FallbackNothingUnbought},
		{"no curators", 1, func(m *mockStore) { m.curators = nil }, FallbackNoSimilarCurator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newShopStore()
			tt.mutate(store)
			r := newTestRecommender(t, store, nil)

			rec, err := r.Recommend(context.Background(), tt.customerID, 3)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if rec.Source != models.SourceGeneric || rec.CuratorID != 0 {
				t.Errorf("source = %q curator = %d, want generic", rec.Source, rec.CuratorID)
			}
			if rec.FallbackReason != tt.wantReason {
				t.Errorf("FallbackReason = %q, want %q", rec.FallbackReason, tt.wantReason)
			}
			if want := []int{1, 2, 3}; !equalInts(rec.Items, want) {
				t.Errorf("Items = %v, want %v", rec.Items, want)
			}
			if r.Stats().Fallbacks != 1 {
				t.Errorf("Fallbacks = %d, want 1", r.Stats().Fallbacks)
			}
		})
	}
}

func TestMostSimilarCurator_ExcludesSelf(t *testing.T) {
	r := newTestRecommender(t, newShopStore(), nil)

	match, err := r.MostSimilarCurator(context.Background(), 10)
	if err != nil {
		t.Fatalf("MostSimilarCurator() error = %v", err)
	}
	if match.RaterID != 11 {
		t.Errorf("curator 10 matched %d, want 11", match.RaterID)
	}
}

func TestMostSimilarCurator(t *testing.T) {
	r := newTestRecommender(t, newShopStore(), nil)
	ctx := context.Background()

	match, err := r.MostSimilarCurator(ctx, 1)
	if err != nil {
		t.Fatalf("MostSimilarCurator() error = %v", err)
	}
	if match.RaterID != 11 || match.Distance != 1.0 || match.Overlap != 1 {
		t.Errorf("match = %+v, want curator 11 distance 1 overlap 1", match)
	}

	if _, err := r.MostSimilarCurator(ctx, 2); !errors.Is(err, similarity.ErrNoSimilarRater) {
		t.Errorf("MostSimilarCurator(2) error = %v, want ErrNoSimilarRater", err)
	}
}

func TestRankCurators(t *testing.T) {
	r := newTestRecommender(t, newShopStore(), nil)
	ctx := context.Background()

	matches, err := r.RankCurators(ctx, 1)
	if err != nil {
		t.Fatalf("RankCurators() error = %v", err)
	}
	if len(matches) != 2 || matches[0].RaterID != 11 || matches[1].RaterID != 10 {
		t.Errorf("RankCurators(1) = %+v, want 11 then 10", matches)
	}
	if matches[1].Distance != 1.5 {
		t.Errorf("curator 10 distance = %v, want 1.5", matches[1].Distance)
	}

	matches, err = r.RankCurators(ctx, 2)
	if err != nil {
		t.Fatalf("RankCurators(2) error = %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Errorf("RankCurators(2) = %#v, want empty non-nil slice", matches)
	}
}

func TestRecommend_StoreErrorPropagates(t *testing.T) {
	store := newShopStore()
	boom := errors.New("connection reset")
	store.setErr(boom)
	r := newTestRecommender(t, store, nil)

	_, err := r.Recommend(context.Background(), 1, 3)
	if !errors.Is(err, boom) {
		t.Fatalf("Recommend() error = %v, want %v", err, boom)
	}
	if r.Stats().Errors != 1 {
		t.Errorf("Errors = %d, want 1", r.Stats().Errors)
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	store := newShopStore()
	store.setErr(errors.New("db down"))
	cfg := DefaultConfig()
	cfg.BreakerMaxFailures = 2
	cfg.BreakerTimeout = time.Hour
	cfg.CacheTTL = 0
	r := newTestRecommender(t, store, cfg)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := r.Generic(ctx, 1); err == nil || errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("call %d error = %v, want store error", i, err)
		}
	}

	store.setErr(nil)
	_, err := r.Generic(ctx, 1)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("Generic() with open breaker error = %v, want ErrStoreUnavailable", err)
	}
	if got := r.Stats().BreakerState; got != "open" {
		t.Errorf("BreakerState = %q, want open", got)
	}
}

func TestBreaker_IgnoresCancellation(t *testing.T) {
	store := newShopStore()
	store.setErr(context.Canceled)
	cfg := DefaultConfig()
	cfg.BreakerMaxFailures = 1
	cfg.CacheTTL = 0
	r := newTestRecommender(t, store, cfg)

	for i := 0; i < 3; i++ {
		_, err := r.Generic(context.Background(), 1)
		if errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("call %d tripped the breaker on cancellation", i)
		}
	}
}

func TestRepopulate(t *testing.T) {
	store := newShopStore()
	r := newTestRecommender(t, store, nil)

	stats, err := r.Repopulate(context.Background())
	if err != nil {
		t.Fatalf("Repopulate() error = %v", err)
	}
	if stats.PopularItems != 4 || stats.DefinitiveRatings != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if last := r.Stats().LastRefreshed; last == nil || last.PopularItems != 4 {
		t.Errorf("LastRefreshed = %+v, want recorded stats", last)
	}
}

func TestRepopulate_Error(t *testing.T) {
	store := newShopStore()
	store.repopulateErr = errors.New("deadlock")
	r := newTestRecommender(t, store, nil)

	if _, err := r.Repopulate(context.Background()); !errors.Is(err, store.repopulateErr) {
		t.Fatalf("Repopulate() error = %v, want %v", err, store.repopulateErr)
	}
	if r.Stats().LastRefreshed != nil {
		t.Error("LastRefreshed set after failed repopulate")
	}
}

func TestRepopulate_RejectsConcurrentRun(t *testing.T) {
	store := newShopStore()
	started := make(chan struct{})
	release := make(chan struct{})
	store.repopulateHook = func() {
		close(started)
		<-release
	}
	r := newTestRecommender(t, store, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := r.Repopulate(context.Background()); err != nil {
			t.Errorf("first Repopulate() error = %v", err)
		}
	}()

	<-started
	if _, err := r.Repopulate(context.Background()); !errors.Is(err, ErrRepopulateInProgress) {
		t.Errorf("second Repopulate() error = %v, want ErrRepopulateInProgress", err)
	}
	close(release)
	wg.Wait()

	if store.repopulateCalls != 1 {
		t.Errorf("store repopulated %d times, want 1", store.repopulateCalls)
	}
}
