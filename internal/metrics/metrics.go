// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Duration of snapshot store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_query_errors_total",
			Help: "Total number of failed snapshot store queries",
		},
		[]string{"operation"},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Recommendations served, by the strategy that produced them",
		},
		[]string{"source"}, // "curator", "generic"
	)

	RecommendationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_fallbacks_total",
			Help: "Personalized requests answered with generic recommendations",
		},
		[]string{"reason"}, // "no_similar_curator", "nothing_unbought"
	)

	CuratorMatchDistance = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "curator_match_distance",
			Help:    "Mean absolute rating difference between a customer and the matched curator",
			Buckets: []float64{0, 0.5, 1, 1.5, 2, 3, 4, 5, 7.5, 10},
		},
	)

	CuratorMatchOverlap = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "curator_match_overlap_items",
			Help:    "Popular items rated by both the customer and the matched curator",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Generic recommendation cache hits",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Generic recommendation cache misses",
		},
	)

	// Snapshot metrics
	SnapshotRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snapshot_refresh_duration_seconds",
			Help:    "Duration of PopularItems and DefinitiveRatings refreshes",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	SnapshotRefreshErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_refresh_errors_total",
			Help: "Total number of failed snapshot refreshes",
		},
	)

	SnapshotLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_last_success_timestamp_seconds",
			Help: "Unix time of the last successful snapshot refresh",
		},
	)

	SnapshotPopularItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_popular_items",
			Help: "Rows written to PopularItems by the last refresh",
		},
	)

	SnapshotDefinitiveRatings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_definitive_ratings",
			Help: "Rows written to DefinitiveRatings by the last refresh",
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// RecordStoreQuery records one store operation.
func RecordStoreQuery(operation string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation counts a served recommendation list.
func RecordRecommendation(source string) {
	RecommendationsTotal.WithLabelValues(source).Inc()
}

// RecordFallback counts a personalized request answered generically.
func RecordFallback(reason string) {
	RecommendationFallbacks.WithLabelValues(reason).Inc()
}

// RecordCuratorMatch observes a successful curator match.
func RecordCuratorMatch(distance float64, overlap int) {
	CuratorMatchDistance.Observe(distance)
	CuratorMatchOverlap.Observe(float64(overlap))
}

// RecordCacheLookup counts a generic cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendCacheHits.Inc()
	} else {
		RecommendCacheMisses.Inc()
	}
}

// RecordSnapshotRefresh records a refresh attempt. Row gauges and the
// success timestamp only move on success.
func RecordSnapshotRefresh(duration time.Duration, popularItems, definitiveRatings int, err error) {
	SnapshotRefreshDuration.Observe(duration.Seconds())
	if err != nil {
		SnapshotRefreshErrors.Inc()
		return
	}
	SnapshotPopularItems.Set(float64(popularItems))
	SnapshotDefinitiveRatings.Set(float64(definitiveRatings))
	SnapshotLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordBreakerTransition records a circuit breaker state change. state is
// the numeric value of the new state: 0 closed, 1 half-open, 2 open.
func RecordBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(state)
}
