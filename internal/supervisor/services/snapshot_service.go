// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/logging"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/recommend"
)

const (
	defaultRefreshInterval = time.Hour
	refreshTimeout         = 5 * time.Minute
)

// SnapshotRefresher rebuilds PopularItems and DefinitiveRatings.
// Implemented by *recommend.Recommender.
type SnapshotRefresher interface {
	Repopulate(ctx context.Context) (models.RepopulateStats, error)
}

// SnapshotServiceConfig controls the refresh schedule.
type SnapshotServiceConfig struct {
	// RefreshOnStartup repopulates once before the first tick.
	RefreshOnStartup bool

	// RefreshInterval is the time between scheduled refreshes.
	// Default: 1h
	RefreshInterval time.Duration
}

// SnapshotService periodically repopulates the snapshot tables. A failed
// refresh is logged and retried on the next tick; it never stops the
// service, since the previous snapshot stays valid.
type SnapshotService struct {
	refresher SnapshotRefresher
	config    SnapshotServiceConfig
	logger    zerolog.Logger
	name      string
}

// NewSnapshotService creates the refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSnapshotService(refresher SnapshotRefresher, cfg SnapshotServiceConfig, logger zerolog.Logger) *SnapshotService {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}
	return &SnapshotService{
		refresher: refresher,
		config:    cfg,
		logger:    logger.With().Str("service", "snapshot").Logger(),
		name:      "snapshot-refresh",
	}
}

// Serve implements suture.Service.
func (s *SnapshotService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("refresh_on_startup", s.config.RefreshOnStartup).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("snapshot service starting")

	if s.config.RefreshOnStartup {
		s.refresh(ctx, "startup")
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("snapshot service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.refresh(ctx, "scheduled")
		}
	}
}

// refresh runs one repopulate under its own correlation ID.
func (s *SnapshotService) refresh(ctx context.Context, trigger string) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	logger := s.logger.With().
		Str("trigger", trigger).
		Str("correlation_id", logging.CorrelationIDFromContext(ctx)).
		Logger()

	stats, err := s.refresher.Repopulate(ctx)
	switch {
	case err == nil:
		logger.Info().
			Int("popular_items", stats.PopularItems).
			Int("definitive_ratings", stats.DefinitiveRatings).
			Int64("duration_ms", stats.DurationMS).
			Msg("snapshot refresh complete")
	case errors.Is(err, recommend.ErrRepopulateInProgress):
		logger.Debug().Msg("snapshot refresh skipped, another refresh is running")
	case errors.Is(err, context.Canceled):
		logger.Debug().Msg("snapshot refresh canceled")
	default:
		logger.Warn().Err(err).Msg("snapshot refresh failed (will retry on schedule)")
	}
}

// String returns the service name for logging.
func (s *SnapshotService) String() string {
	return s.name
}
