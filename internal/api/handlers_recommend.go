// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package api

import (
	"net/http"
	"time"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
)

// GenericRecommendations handles GET /api/v1/recommendations/generic.
// Returns the k best-rated popular items.
func (h *Handler) GenericRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	k, apiErr := h.parseK(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	items, err := h.rec.Generic(r.Context(), k)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, &models.Recommendation{
		Items:  items,
		Source: models.SourceGeneric,
		K:      k,
	}, start, false)
}

// CustomerRecommendations handles GET /api/v1/recommendations/customers/{customerID}.
// Returns curator-based recommendations, or the generic list when no
// curator fits.
func (h *Handler) CustomerRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	customerID, apiErr := parseCustomerID(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	k, apiErr := h.parseK(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	rec, err := h.rec.Recommend(r.Context(), customerID, k)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, rec, start, false)
}

// CustomerCurator handles GET /api/v1/recommendations/customers/{customerID}/curator.
// Returns the closest curator, or 404 NO_SIMILAR_CURATOR.
func (h *Handler) CustomerCurator(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	customerID, apiErr := parseCustomerID(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	match, err := h.rec.MostSimilarCurator(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, &models.CuratorMatch{
		CustomerID: customerID,
		CuratorID:  match.RaterID,
		Distance:   match.Distance,
		Overlap:    match.Overlap,
	}, start, false)
}

// CustomerCurators handles GET /api/v1/recommendations/customers/{customerID}/curators.
// Returns every overlapping curator, closest first.
func (h *Handler) CustomerCurators(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	customerID, apiErr := parseCustomerID(r)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	matches, err := h.rec.RankCurators(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	out := make([]models.CuratorMatch, len(matches))
	for i, m := range matches {
		out[i] = models.CuratorMatch{
			CustomerID: customerID,
			CuratorID:  m.RaterID,
			Distance:   m.Distance,
			Overlap:    m.Overlap,
		}
	}

	respondSuccess(w, map[string]interface{}{
		"curators": out,
		"count":    len(out),
	}, start, false)
}
