// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/config"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/logging"
	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/metrics"
)

const memoryPath = ":memory:"

// DB wraps the SQL connection pool and provides the store operations.
type DB struct {
	conn   *sql.DB
	cfg    *config.DatabaseConfig
	logger zerolog.Logger
}

// New opens the configured database and creates the schema if needed.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	driver, dsn, err := connectionString(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn:   conn,
		cfg:    cfg,
		logger: logging.WithComponent("database"),
	}

	db.configureConnectionPool()

	ctx, cancel := schemaContext()
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if err := db.createTables(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	db.logger.Info().Str("driver", driver).Msg("Database ready")
	return db, nil
}

// connectionString returns the database/sql driver name and DSN for cfg.
func connectionString(cfg *config.DatabaseConfig) (string, string, error) {
	switch cfg.Driver {
	case config.DriverDuckDB, "":
		if cfg.Path != memoryPath {
			// 0750 keeps the data directory private to the service user and group.
			dir := filepath.Dir(cfg.Path)
			if dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return "", "", fmt.Errorf("failed to create database directory %s: %w", dir, err)
				}
			}
		}
		threads := cfg.Threads
		if threads <= 0 {
			threads = runtime.NumCPU()
		}
		maxMemory := cfg.MaxMemory
		if maxMemory == "" {
			maxMemory = "1GB"
		}
		return "duckdb", fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
			cfg.Path, threads, maxMemory), nil
	case config.DriverPostgres:
		return "postgres", cfg.DSN, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// configureConnectionPool sizes the pool for the request load.
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Driver returns the database/sql driver name in use.
func (db *DB) Driver() string {
	if db.cfg.Driver == "" {
		return config.DriverDuckDB
	}
	return db.cfg.Driver
}

// Conn returns the underlying connection pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	start := time.Now()
	err := db.conn.PingContext(ctx)
	metrics.RecordStoreQuery("ping", time.Since(start), err)
	return err
}

// Close releases the connection pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// observe records the duration and outcome of one store operation.
func observe(operation string, start time.Time, err error) {
	metrics.RecordStoreQuery(operation, time.Since(start), err)
}
