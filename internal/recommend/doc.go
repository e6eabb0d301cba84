// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Package recommend assembles item recommendations for shop customers.

Two strategies are combined:

  - Generic: the popular items with the highest average review rating.
  - Personalized: find the curator whose ratings of popular items are
    closest to the customer's (mean absolute difference, see package
    similarity), then recommend the items that curator rated highest among
    those the customer has never bought.

A personalized request falls back to the generic list when the customer is
unknown, shares no rated popular item with any curator, or has already
bought everything the matched curator reviewed. Recommendation.Source says
which strategy produced the list.

# Ordering

Every list is sorted by score descending, then item id ascending, and cut
to at most k entries (TopK).

# Resilience

All store calls run through a circuit breaker (sony/gobreaker). After
BreakerMaxFailures consecutive failures the breaker opens and calls fail
fast with ErrStoreUnavailable until BreakerTimeout elapses. Each public
operation is bounded by QueryTimeout.

# Caching

The popular-item averages behind Generic are cached for CacheTTL and
dropped whenever Repopulate succeeds.
*/
package recommend
