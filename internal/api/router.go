// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/config"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/metrics"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/middleware"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
)

// Router wires the handler into a chi route tree.
type Router struct {
	handler  *Handler
	security config.SecurityConfig
}

// NewRouter creates a router for handler.
func NewRouter(handler *Handler, security config.SecurityConfig) *Router {
	return &Router{handler: handler, security: security}
}

// Setup builds the HTTP handler with all routes and middleware.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.cors())
	r.Use(chimiddleware.Compress(5))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.handler.Health)

		r.Group(func(r chi.Router) {
			r.Use(router.rateLimit())

			r.Route("/recommendations", func(r chi.Router) {
				r.Get("/generic", router.handler.GenericRecommendations)
				r.Get("/customers/{customerID}", router.handler.CustomerRecommendations)
				r.Get("/customers/{customerID}/curator", router.handler.CustomerCurator)
				r.Get("/customers/{customerID}/curators", router.handler.CustomerCurators)
			})

			r.Post("/snapshots/repopulate", router.handler.Repopulate)
		})
	})

	return r
}

func (router *Router) cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: router.security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
		MaxAge:         300,
	})
}

// rateLimit limits requests per client IP. It is a no-op when disabled.
func (router *Router) rateLimit() func(http.Handler) http.Handler {
	if router.security.RateLimitDisabled || router.security.RateLimitReqs <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	window := router.security.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}

	return httprate.Limit(
		router.security.RateLimitReqs,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimited),
	)
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	endpoint := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			endpoint = pattern
		}
	}
	metrics.APIRateLimitHits.WithLabelValues(endpoint).Inc()

	respondError(w, r, http.StatusTooManyRequests, &models.APIError{
		Code:    ErrCodeRateLimitExceeded,
		Message: "Too many requests",
	}, nil)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, &models.APIError{
		Code:    ErrCodeNotFound,
		Message: "Resource not found",
	}, nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, &models.APIError{
		Code:    ErrCodeMethodNotAllowed,
		Message: "Method not allowed",
	}, nil)
}
