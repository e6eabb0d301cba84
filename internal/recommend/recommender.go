// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/cache"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/logging"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/metrics"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/ratings"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/similarity"
)

// Store is the rating source the recommender reads from. It is implemented
// by *database.DB.
type Store interface {
	// CuratorIDs returns every curator, ascending.
	CuratorIDs(ctx context.Context) ([]int, error)

	// RatingTriples returns the definitive curator ratings plus the
	// customer's own ratings of popular items.
	RatingTriples(ctx context.Context, customerID int) ([]ratings.Triple, error)

	// PopularItemAverages returns the average rating of each popular item.
	PopularItemAverages(ctx context.Context) ([]models.ItemScore, error)

	// UnboughtRatings returns rater's ratings of items customer never bought.
	UnboughtRatings(ctx context.Context, raterID, customerID int) ([]models.ItemScore, error)

	// CustomerExists reports whether the customer is known.
	CustomerExists(ctx context.Context, customerID int) (bool, error)

	// Repopulate rebuilds the PopularItems and DefinitiveRatings snapshots.
	Repopulate(ctx context.Context) (models.RepopulateStats, error)
}

const averagesCacheKey = "popular_item_averages"

// Recommender serves generic and curator-based recommendations. It is safe
// for concurrent use.
type Recommender struct {
	store   Store
	config  *Config
	logger  zerolog.Logger
	breaker *gobreaker.CircuitBreaker[any]

	averages *cache.Cache[[]models.ItemScore]

	// generation counts refreshes. A fetch started under an older
	// generation must not fill the cache; cacheMu makes the check and the
	// Set atomic with respect to Clear.
	generation atomic.Uint64
	cacheMu    sync.Mutex

	refreshing    atomic.Bool
	lastRefreshed atomic.Pointer[models.RepopulateStats]

	requestCount  atomic.Int64
	fallbackCount atomic.Int64
	errorCount    atomic.Int64
}

// Stats is a snapshot of the recommender's counters.
type Stats struct {
	Requests      int64                   `json:"requests"`
	Fallbacks     int64                   `json:"fallbacks"`
	Errors        int64                   `json:"errors"`
	CacheHits     int64                   `json:"cache_hits"`
	CacheMisses   int64                   `json:"cache_misses"`
	CacheHitRate  float64                 `json:"cache_hit_rate"`
	BreakerState  string                  `json:"breaker_state"`
	LastRefreshed *models.RepopulateStats `json:"last_refreshed,omitempty"`
}

// New creates a recommender over store. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(store Store, cfg *Config, logger zerolog.Logger) (*Recommender, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Recommender{
		store:    store,
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		breaker:  newStoreBreaker(cfg),
		averages: cache.New[[]models.ItemScore](cfg.CacheTTL),
	}, nil
}

// Close stops the cache sweeper.
func (r *Recommender) Close() {
	r.averages.Close()
}

// Config returns the active configuration.
func (r *Recommender) Config() Config {
	return *r.config
}

// resolveK rejects non-positive k and clamps to MaxK.
func (r *Recommender) resolveK(k int) (int, error) {
	switch {
	case k <= 0:
		return 0, ErrInvalidK
	case k > r.config.MaxK:
		return r.config.MaxK, nil
	default:
		return k, nil
	}
}

// requestLogger adds request scoped fields to the component logger.
func (r *Recommender) requestLogger(ctx context.Context, customerID int) zerolog.Logger {
	lc := r.logger.With()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		lc = lc.Str("correlation_id", id)
	}
	if customerID != 0 {
		lc = lc.Int("customer_id", customerID)
	}
	return lc.Logger()
}

// Generic returns the ids of the k popular items with the best average
// rating.
func (r *Recommender) Generic(ctx context.Context, k int) ([]int, error) {
	r.requestCount.Add(1)

	k, err := r.resolveK(k)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.QueryTimeout)
	defer cancel()

	items, err := r.generic(ctx, k)
	if err != nil {
		r.errorCount.Add(1)
		return nil, err
	}
	metrics.RecordRecommendation(models.SourceGeneric)
	return items, nil
}

func (r *Recommender) generic(ctx context.Context, k int) ([]int, error) {
	if scores, ok := r.averages.Get(averagesCacheKey); ok {
		metrics.RecordCacheLookup(true)
		return TopK(scores, k), nil
	}
	metrics.RecordCacheLookup(false)

	gen := r.generation.Load()
	scores, err := guarded(r.breaker, func() ([]models.ItemScore, error) {
		return r.store.PopularItemAverages(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("popular item averages: %w", err)
	}
	r.cacheMu.Lock()
	if r.generation.Load() == gen {
		r.averages.Set(averagesCacheKey, scores)
	}
	r.cacheMu.Unlock()
	return TopK(scores, k), nil
}

// MostSimilarCurator returns the curator closest to the customer. It
// returns similarity.ErrNoSimilarRater when no curator shares a rated
// popular item with the customer.
func (r *Recommender) MostSimilarCurator(ctx context.Context, customerID int) (similarity.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.QueryTimeout)
	defer cancel()

	table, candidates, err := r.loadRatings(ctx, customerID)
	if err != nil {
		return similarity.Match{}, err
	}
	return similarity.FindMostSimilar(table, candidates, customerID)
}

// RankCurators returns every curator sharing a rated popular item with the
// customer, closest first.
func (r *Recommender) RankCurators(ctx context.Context, customerID int) ([]similarity.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.QueryTimeout)
	defer cancel()

	table, candidates, err := r.loadRatings(ctx, customerID)
	if err != nil {
		return nil, err
	}
	matches := similarity.Rank(table, candidates, customerID)
	if matches == nil {
		matches = []similarity.Match{}
	}
	return matches, nil
}

// loadRatings builds the rating table for one customer and returns the
// curator candidates in store order, without the customer themselves.
// A curator asking for recommendations is therefore matched with another
// curator rather than with itself at distance 0.
func (r *Recommender) loadRatings(ctx context.Context, customerID int) (*ratings.Table, []int, error) {
	curators, err := guarded(r.breaker, func() ([]int, error) {
		return r.store.CuratorIDs(ctx)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("curator ids: %w", err)
	}

	triples, err := guarded(r.breaker, func() ([]ratings.Triple, error) {
		return r.store.RatingTriples(ctx, customerID)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("rating triples: %w", err)
	}

	table, err := ratings.FromTriples(triples)
	if err != nil {
		return nil, nil, fmt.Errorf("build rating table: %w", err)
	}

	candidates := make([]int, 0, len(curators))
	for _, id := range curators {
		if id != customerID {
			candidates = append(candidates, id)
		}
	}
	return table, candidates, nil
}

// Recommend returns up to k items for the customer: the matched curator's
// best-rated items the customer has not bought, or the generic list when
// personalization is not possible.
func (r *Recommender) Recommend(ctx context.Context, customerID, k int) (*models.Recommendation, error) {
	start := time.Now()
	r.requestCount.Add(1)
	logger := r.requestLogger(ctx, customerID)

	k, err := r.resolveK(k)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.QueryTimeout)
	defer cancel()

	rec, err := r.recommend(ctx, customerID, k, logger)
	if err != nil {
		r.errorCount.Add(1)
		logger.Warn().Err(err).Msg("recommendation failed")
		return nil, err
	}

	metrics.RecordRecommendation(rec.Source)
	logger.Debug().
		Str("source", rec.Source).
		Int("curator_id", rec.CuratorID).
		Int("returned", len(rec.Items)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")
	return rec, nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (r *Recommender) recommend(ctx context.Context, customerID, k int, logger zerolog.Logger) (*models.Recommendation, error) {
	exists, err := guarded(r.breaker, func() (bool, error) {
		return r.store.CustomerExists(ctx, customerID)
	})
	if err != nil {
		return nil, fmt.Errorf("customer lookup: %w", err)
	}
	if !exists {
		return r.fallback(ctx, customerID, k, FallbackUnknownCustomer, logger)
	}

	table, candidates, err := r.loadRatings(ctx, customerID)
	if err != nil {
		return nil, err
	}

	match, err := similarity.FindMostSimilar(table, candidates, customerID)
	if errors.Is(err, similarity.ErrNoSimilarRater) {
		return r.fallback(ctx, customerID, k, FallbackNoSimilarCurator, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("find similar curator: %w", err)
	}
	metrics.RecordCuratorMatch(match.Distance, match.Overlap)

	scores, err := guarded(r.breaker, func() ([]models.ItemScore, error) {
		return r.store.UnboughtRatings(ctx, match.RaterID, customerID)
	})
	if err != nil {
		return nil, fmt.Errorf("unbought ratings: %w", err)
	}
	if len(scores) == 0 {
		return r.fallback(ctx, customerID, k, FallbackNothingUnbought, logger)
	}

	return &models.Recommendation{
		CustomerID: customerID,
		Items:      TopK(scores, k),
		Source:     models.SourceCurator,
		CuratorID:  match.RaterID,
		K:          k,
	}, nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (r *Recommender) fallback(ctx context.Context, customerID, k int, reason string, logger zerolog.Logger) (*models.Recommendation, error) {
	r.fallbackCount.Add(1)
	metrics.RecordFallback(reason)
	logger.Debug().Str("reason", reason).Msg("falling back to generic recommendations")

	items, err := r.generic(ctx, k)
	if err != nil {
		return nil, err
	}
	return &models.Recommendation{
		CustomerID:     customerID,
		Items:          items,
		Source:         models.SourceGeneric,
		K:              k,
		FallbackReason: reason,
	}, nil
}

// Repopulate rebuilds the snapshot tables and drops cached averages. Only
// one refresh runs at a time; a concurrent call gets ErrRepopulateInProgress.
func (r *Recommender) Repopulate(ctx context.Context) (models.RepopulateStats, error) {
	if !r.refreshing.CompareAndSwap(false, true) {
		return models.RepopulateStats{}, ErrRepopulateInProgress
	}
	defer r.refreshing.Store(false)

	logger := r.requestLogger(ctx, 0)
	start := time.Now()

	stats, err := guarded(r.breaker, func() (models.RepopulateStats, error) {
		return r.store.Repopulate(ctx)
	})
	metrics.RecordSnapshotRefresh(time.Since(start), stats.PopularItems, stats.DefinitiveRatings, err)
	if err != nil {
		r.errorCount.Add(1)
		logger.Error().Err(err).Msg("snapshot repopulate failed")
		return models.RepopulateStats{}, fmt.Errorf("repopulate: %w", err)
	}

	r.cacheMu.Lock()
	r.averages.Clear()
	r.generation.Add(1)
	r.cacheMu.Unlock()
	r.lastRefreshed.Store(&stats)

	logger.Info().
		Int("popular_items", stats.PopularItems).
		Int("definitive_ratings", stats.DefinitiveRatings).
		Msg("snapshots refreshed")
	return stats, nil
}

// Stats returns the current counters.
func (r *Recommender) Stats() Stats {
	cs := r.averages.GetStats()
	return Stats{
		Requests:      r.requestCount.Load(),
		Fallbacks:     r.fallbackCount.Load(),
		Errors:        r.errorCount.Load(),
		CacheHits:     cs.Hits,
		CacheMisses:   cs.Misses,
		CacheHitRate:  r.averages.HitRate(),
		BreakerState:  r.breaker.State().String(),
		LastRefreshed: r.lastRefreshed.Load(),
	}
}
