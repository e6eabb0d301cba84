// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Package api serves the recommender over HTTP with the chi router.

# Endpoints

	GET  /api/v1/health
	GET  /api/v1/recommendations/generic?k=
	GET  /api/v1/recommendations/customers/{customerID}?k=
	GET  /api/v1/recommendations/customers/{customerID}/curator
	GET  /api/v1/recommendations/customers/{customerID}/curators
	POST /api/v1/snapshots/repopulate
	GET  /metrics

k defaults to the configured default and must lie in [1, max_k].

# Responses

Every JSON endpoint writes models.APIResponse:

	{"status":"success","data":{...},"metadata":{"timestamp":"...","query_time_ms":2}}
	{"status":"error","data":null,"metadata":{...},"error":{"code":"VALIDATION_ERROR","message":"k must be at least 1"}}

# Middleware

Request IDs and Prometheus instrumentation come from package middleware.
CORS uses go-chi/cors and per-IP rate limiting uses go-chi/httprate. The
repopulate endpoint is additionally spaced out with a golang.org/x/time/rate
limiter, since each call rewrites the snapshot tables.
*/
package api
