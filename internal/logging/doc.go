// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

// Package logging provides the process-wide zerolog logger.
//
// A usable JSON logger writing to stderr exists from package init, so code
// that logs before main has loaded configuration still produces output.
// main reconfigures it once config is available:
//
//	logging.Init(logging.Config{
//	    Level:  cfg.Logging.Level,
//	    Format: cfg.Logging.Format,
//	    Caller: cfg.Logging.Caller,
//	})
//
// Components take a child logger carrying a component field:
//
//	logger := logging.WithComponent("recommend")
//	logger.Info().Int("customer_id", id).Msg("recommendation served")
//
// Request-scoped code uses Ctx, which adds the request and correlation IDs
// placed on the context by the HTTP middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("store unavailable")
//
// The supervisor tree logs through log/slog; NewSlogLogger bridges those
// records into the same zerolog output.
//
// Always terminate event chains with Msg or Send, otherwise nothing is
// written.
package logging
