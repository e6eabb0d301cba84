// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package recommend

import "errors"

var (
	// ErrInvalidK is returned when k is zero or negative.
	ErrInvalidK = errors.New("k must be positive")

	// ErrStoreUnavailable is returned while the circuit breaker is open.
	ErrStoreUnavailable = errors.New("recommendation store unavailable")

	// ErrRepopulateInProgress is returned when a snapshot refresh is already
	// running.
	ErrRepopulateInProgress = errors.New("repopulate already in progress")
)

// Fallback reasons reported in metrics and logs.
const (
	FallbackUnknownCustomer  = "unknown_customer"
	FallbackNoSimilarCurator = "no_similar_curator"
	FallbackNothingUnbought  = "nothing_unbought"
)
