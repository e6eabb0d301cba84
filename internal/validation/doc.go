// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

// Package validation wraps go-playground/validator v10 behind a process-wide
// singleton and translates its errors into the API's VALIDATION_ERROR shape.
//
// Field names in messages come from json tags, so a failure on
//
//	type query struct {
//	    K int `json:"k" validate:"min=1,max=100"`
//	}
//
// reads "k must be at most 100" rather than naming the Go field.
//
// Limits that are only known at runtime, such as the configured maximum k,
// are checked with ValidateVar:
//
//	if err := validation.ValidateVar("k", k, fmt.Sprintf("min=1,max=%d", maxK)); err != nil {
//	    respondValidationError(w, err)
//	}
package validation
