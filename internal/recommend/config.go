// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package recommend

import (
	"fmt"
	"time"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/config"
)

// Config holds the recommender's operational settings.
type Config struct {
	// DefaultK is the list size for requests that do not name one.
	DefaultK int `json:"default_k"`

	// MaxK caps k. Larger requests are clamped.
	MaxK int `json:"max_k"`

	// CacheTTL is the lifetime of cached popular-item averages. Zero disables
	// the cache.
	CacheTTL time.Duration `json:"cache_ttl"`

	// QueryTimeout bounds the store work of a single operation.
	QueryTimeout time.Duration `json:"query_timeout"`

	// BreakerMaxFailures consecutive store failures open the breaker.
	BreakerMaxFailures uint32 `json:"breaker_max_failures"`

	// BreakerTimeout is how long the breaker stays open.
	BreakerTimeout time.Duration `json:"breaker_timeout"`
}

// DefaultConfig returns the settings used when none are given.
func DefaultConfig() *Config {
	return &Config{
		DefaultK:           10,
		MaxK:               100,
		CacheTTL:           5 * time.Minute,
		QueryTimeout:       10 * time.Second,
		BreakerMaxFailures: 5,
		BreakerTimeout:     30 * time.Second,
	}
}

// ConfigFrom converts the application's recommend section.
func ConfigFrom(rc config.RecommendConfig) *Config {
	return &Config{
		DefaultK:           rc.DefaultK,
		MaxK:               rc.MaxK,
		CacheTTL:           rc.CacheTTL,
		QueryTimeout:       rc.QueryTimeout,
		BreakerMaxFailures: rc.BreakerMaxFailures,
		BreakerTimeout:     rc.BreakerTimeout,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxK < 1 {
		return fmt.Errorf("max_k must be at least 1, got %d", c.MaxK)
	}
	if c.DefaultK < 1 || c.DefaultK > c.MaxK {
		return fmt.Errorf("default_k must be between 1 and %d, got %d", c.MaxK, c.DefaultK)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative")
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("query_timeout must be positive")
	}
	if c.BreakerMaxFailures == 0 {
		return fmt.Errorf("breaker_max_failures must be at least 1")
	}
	if c.BreakerTimeout <= 0 {
		return fmt.Errorf("breaker_timeout must be positive")
	}
	return nil
}
