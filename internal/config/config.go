// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package config

import (
	"fmt"
	"time"
)

// Supported database drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Recommend RecommendConfig `koanf:"recommend"`
	Snapshot  SnapshotConfig  `koanf:"snapshot"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatabaseConfig selects and tunes the snapshot store.
type DatabaseConfig struct {
	Driver       string `koanf:"driver"`
	Path         string `koanf:"path"`       // DuckDB file, or ":memory:"
	DSN          string `koanf:"dsn"`        // PostgreSQL connection string
	MaxMemory    string `koanf:"max_memory"` // DuckDB only
	Threads      int    `koanf:"threads"`    // DuckDB only, 0 = NumCPU
	SeedDemoData bool   `koanf:"seed_demo_data"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RecommendConfig holds recommendation serving settings.
type RecommendConfig struct {
	// DefaultK is used when a request does not specify k.
	DefaultK int `koanf:"default_k"`

	// MaxK is the largest k a request may ask for.
	MaxK int `koanf:"max_k"`

	// CacheTTL is how long generic recommendations are cached. 0 disables caching.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// QueryTimeout bounds each recommendation's store work.
	QueryTimeout time.Duration `koanf:"query_timeout"`

	// BreakerMaxFailures consecutive store failures open the circuit breaker.
	BreakerMaxFailures uint32 `koanf:"breaker_max_failures"`

	// BreakerTimeout is how long the breaker stays open before probing.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`
}

// SnapshotConfig controls refreshes of the PopularItems and
// DefinitiveRatings snapshot tables.
type SnapshotConfig struct {
	Enabled         bool          `koanf:"enabled"`
	RefreshInterval time.Duration `koanf:"refresh_interval"`
	OnStartup       bool          `koanf:"on_startup"`

	// MinManualInterval limits how often the API may trigger a refresh.
	MinManualInterval time.Duration `koanf:"min_manual_interval"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is trace, debug, info, warn or error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller adds file:line to log events.
	Caller bool `koanf:"caller"`
}
