// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package api

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/recommend"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/similarity"
)

// Recommender is the service behind the recommendation endpoints. It is
// implemented by *recommend.Recommender.
type Recommender interface {
	Generic(ctx context.Context, k int) ([]int, error)
	Recommend(ctx context.Context, customerID, k int) (*models.Recommendation, error)
	MostSimilarCurator(ctx context.Context, customerID int) (similarity.Match, error)
	RankCurators(ctx context.Context, customerID int) ([]similarity.Match, error)
	Repopulate(ctx context.Context) (models.RepopulateStats, error)
	Stats() recommend.Stats
}

// Pinger reports store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandlerConfig holds request handling settings.
type HandlerConfig struct {
	// DefaultK is used when a request omits k.
	DefaultK int

	// MaxK is the largest accepted k.
	MaxK int

	// MinManualInterval spaces out API-triggered repopulates. Zero disables
	// the limit.
	MinManualInterval time.Duration

	// Version is reported by the health endpoint.
	Version string
}

// Handler holds the dependencies of every endpoint.
type Handler struct {
	rec       Recommender
	store     Pinger
	config    HandlerConfig
	startTime time.Time

	// repopulateLimiter is nil when manual refreshes are unlimited.
	repopulateLimiter *rate.Limiter
}

// NewHandler creates the API handler.
func NewHandler(rec Recommender, store Pinger, cfg HandlerConfig) *Handler {
	h := &Handler{
		rec:       rec,
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
	if cfg.MinManualInterval > 0 {
		h.repopulateLimiter = rate.NewLimiter(rate.Every(cfg.MinManualInterval), 1)
	}
	return h
}
