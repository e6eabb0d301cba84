// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Package middleware provides the HTTP middleware shared by every API route.

  - RequestID: accepts or generates an X-Request-ID, echoes it on the
    response and seeds the logging context with request and correlation IDs.
  - PrometheusMetrics: counts requests and observes latency per chi route
    pattern, so /customers/{customerID} is one series rather than one per id.

Both have the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
