// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Package metrics defines the Prometheus metrics exported at /metrics.

Metrics are registered on the default registry at package init through
promauto. Callers use the Record* helpers rather than the vectors directly.

# Available Metrics

Store:
  - store_query_duration_seconds{operation}
  - store_query_errors_total{operation}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations:
  - recommendations_total{source}
  - recommendation_fallbacks_total{reason}
  - curator_match_distance
  - curator_match_overlap_items
  - recommend_cache_hits_total, recommend_cache_misses_total

Snapshots:
  - snapshot_refresh_duration_seconds
  - snapshot_refresh_errors_total
  - snapshot_last_success_timestamp_seconds
  - snapshot_popular_items, snapshot_definitive_ratings

Circuit breaker:
  - circuit_breaker_state{name}
  - circuit_breaker_transitions_total{name,from,to}
*/
package metrics
