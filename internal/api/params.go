// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/validation"
)

// parseK reads the k query parameter. A missing k is DefaultK.
func (h *Handler) parseK(r *http.Request) (int, *models.APIError) {
	raw := r.URL.Query().Get("k")
	if raw == "" {
		return h.config.DefaultK, nil
	}

	k, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.APIError{
			Code:    ErrCodeValidation,
			Message: "k must be an integer",
			Details: map[string]interface{}{"field": "k", "value": raw},
		}
	}

	if verr := validation.ValidateVar("k", k, fmt.Sprintf("min=1,max=%d", h.config.MaxK)); verr != nil {
		return 0, verr.ToAPIError()
	}
	return k, nil
}

// parseCustomerID reads the {customerID} path parameter.
func parseCustomerID(r *http.Request) (int, *models.APIError) {
	raw := chi.URLParam(r, "customerID")

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.APIError{
			Code:    ErrCodeValidation,
			Message: "customerID must be an integer",
			Details: map[string]interface{}{"field": "customerID", "value": raw},
		}
	}

	if verr := validation.ValidateVar("customerID", id, "gte=0"); verr != nil {
		return 0, verr.ToAPIError()
	}
	return id, nil
}
