// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/api"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/config"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/database"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/logging"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/recommend"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/supervisor"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	httpShutdownTimeout = 10 * time.Second
	httpIdleTimeout     = 60 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting recommender")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Recommender stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// app is everything main starts, separated from signal handling.
type app struct {
	db   *database.DB
	rec  *recommend.Recommender
	tree *supervisor.SupervisorTree
}

func (a *app) close() {
	a.rec.Close()
	if err := a.db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}

// newApp opens the store and builds the recommender, HTTP server and
// supervisor tree. Nothing is running when it returns.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("driver", db.Driver()).Msg("Database initialized successfully")

	if cfg.Database.SeedDemoData {
		seeded, err := db.SeedDemoData(ctx)
		if err != nil {
			closeDB(db)
			return nil, err
		}
		logging.Info().Bool("seeded", seeded).Msg("Demo data seeding checked")
	}

	rec, err := recommend.New(db, recommend.ConfigFrom(cfg.Recommend), logging.WithComponent("recommend"))
	if err != nil {
		closeDB(db)
		return nil, err
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		rec.Close()
		closeDB(db)
		return nil, err
	}

	if cfg.Snapshot.Enabled {
		tree.AddSnapshotService(services.NewSnapshotService(rec, services.SnapshotServiceConfig{
			RefreshOnStartup: cfg.Snapshot.OnStartup,
			RefreshInterval:  cfg.Snapshot.RefreshInterval,
		}, logging.WithComponent("snapshot")))
	} else {
		logging.Info().Msg("Scheduled snapshot refresh disabled")
	}

	handler := api.NewHandler(rec, db, api.HandlerConfig{
		DefaultK:          cfg.Recommend.DefaultK,
		MaxK:              cfg.Recommend.MaxK,
		MinManualInterval: cfg.Snapshot.MinManualInterval,
		Version:           version,
	})
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, cfg.Security).Setup(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       httpIdleTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, httpShutdownTimeout))

	return &app{db: db, rec: rec, tree: tree}, nil
}

func closeDB(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}

// run starts the supervisor tree and blocks until SIGINT or SIGTERM.
func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := a.tree.ServeBackground(ctx)

	var serveErr error
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
			serveErr = err
		}
	}

	unstopped, _ := a.tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	return serveErr
}
