// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/logging"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/metrics"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
)

const repopulateEndpoint = "/api/v1/snapshots/repopulate"

// Repopulate handles POST /api/v1/snapshots/repopulate.
// Rebuilds PopularItems and DefinitiveRatings and returns the row counts.
// Only a successful refresh counts against snapshot.min_manual_interval.
func (h *Handler) Repopulate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if delay := h.manualRefreshDelay(); delay > 0 {
		metrics.APIRateLimitHits.WithLabelValues(repopulateEndpoint).Inc()
		retryAfter := int(delay.Round(time.Second) / time.Second)
		if retryAfter < 1 {
			retryAfter = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		respondError(w, r, http.StatusTooManyRequests, &models.APIError{
			Code:    ErrCodeRateLimitExceeded,
			Message: "Snapshots were refreshed recently, try again later",
			Details: map[string]interface{}{"retry_after_seconds": retryAfter},
		}, nil)
		return
	}

	stats, err := h.rec.Repopulate(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if h.repopulateLimiter != nil {
		h.repopulateLimiter.Allow()
	}

	logging.Ctx(r.Context()).Info().
		Int("popular_items", stats.PopularItems).
		Int("definitive_ratings", stats.DefinitiveRatings).
		Msg("Snapshots repopulated via API")

	respondSuccess(w, stats, start, false)
}

// manualRefreshDelay returns how long until the next manual refresh is
// allowed, or zero when one may run now. It never consumes a token.
func (h *Handler) manualRefreshDelay() time.Duration {
	if h.repopulateLimiter == nil || h.repopulateLimiter.Tokens() >= 1 {
		return 0
	}
	// A reservation that has to wait can be cancelled without cost.
	reservation := h.repopulateLimiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()
	return delay
}
