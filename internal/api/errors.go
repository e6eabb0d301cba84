// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/recommend"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/similarity"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/validation"
)

// Error codes for API responses.
const (
	ErrCodeValidation           = validation.CodeValidation
	ErrCodeNoSimilarCurator     = "NO_SIMILAR_CURATOR"
	ErrCodeStoreUnavailable     = "STORE_UNAVAILABLE"
	ErrCodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	ErrCodeRepopulateInProgress = "REPOPULATE_IN_PROGRESS"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

// classifyError maps a recommender error to an HTTP status, code and
// client-facing message.
func classifyError(err error) (int, string, string) {
	switch {
	case errors.Is(err, recommend.ErrInvalidK):
		return http.StatusBadRequest, ErrCodeValidation, "k must be at least 1"
	case errors.Is(err, similarity.ErrNoSimilarRater):
		return http.StatusNotFound, ErrCodeNoSimilarCurator, "No curator shares a rated popular item with this customer"
	case errors.Is(err, recommend.ErrRepopulateInProgress):
		return http.StatusConflict, ErrCodeRepopulateInProgress, "A snapshot refresh is already running"
	case errors.Is(err, recommend.ErrStoreUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "Recommendation store is unavailable"
	default:
		return http.StatusInternalServerError, ErrCodeInternal, "Internal server error"
	}
}
