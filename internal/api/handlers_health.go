// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/recommend"
)

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status            string          `json:"status"`
	Version           string          `json:"version,omitempty"`
	DatabaseConnected bool            `json:"database_connected"`
	Uptime            float64         `json:"uptime_seconds"`
	Recommender       recommend.Stats `json:"recommender"`
}

// healthPingTimeout bounds the store ping of a health check.
const healthPingTimeout = 2 * time.Second

// Health handles GET /api/v1/health. The status is "healthy" when the
// store answers a ping and "degraded" otherwise; the HTTP status is 200
// either way so the process is not restarted for a database outage.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	dbConnected := h.store != nil && h.store.Ping(ctx) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	respondSuccess(w, HealthStatus{
		Status:            status,
		Version:           h.config.Version,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
		Recommender:       h.rec.Stats(),
	}, start, false)
}
