// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2), later layers win:
//  1. Defaults from defaultConfig()
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/nycdatasets/config.yaml)
//  3. Environment variables (see envTransformFunc for the mapping)
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	db, err := database.New(&cfg.Database)
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Cache     CacheConfig     `koanf:"cache"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// Addr returns the host:port the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Supported database drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// DatabaseConfig selects and tunes the dataset store.
type DatabaseConfig struct {
	Driver       string        `koanf:"driver"`         // duckdb or postgres
	Path         string        `koanf:"path"`           // DuckDB file, or :memory:
	URL          string        `koanf:"url"`            // PostgreSQL connection string
	MaxMemory    string        `koanf:"max_memory"`     // DuckDB memory limit
	Threads      int           `koanf:"threads"`        // DuckDB threads (0 = NumCPU)
	MaxOpenConns int           `koanf:"max_open_conns"` // 0 = NumCPU
	SkipIndexes  bool          `koanf:"skip_indexes"`
	QueryTimeout time.Duration `koanf:"query_timeout"` // applied when the caller has no deadline
}

// AnalyticsConfig holds the row limits and truncation lengths used by the
// analytics endpoints. They are product choices, so they live in config.
type AnalyticsConfig struct {
	TopLimit            int `koanf:"top_limit"`             // top-viewed / top-downloaded default
	AgencyLimit         int `koanf:"agency_limit"`          // by-agency groups returned
	EngagementLimit     int `koanf:"engagement_limit"`      // engagement-metrics rows returned
	SearchLimit         int `koanf:"search_limit"`          // search default
	MaxLimit            int `koanf:"max_limit"`             // upper bound for any ?limit=, 0 = unbounded
	NameMaxChars        int `koanf:"name_max_chars"`        // engagement name truncation
	DescriptionMaxChars int `koanf:"description_max_chars"` // search description truncation
	TimelineMinYear     int `koanf:"timeline_min_year"`     // earliest publication year reported
}

// CacheConfig controls the read-through response cache. It is off by
// default so every request reads the store.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// BreakerConfig controls the circuit breaker wrapped around store queries.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	FailureThreshold uint32        `koanf:"failure_threshold"` // consecutive failures before opening
	Timeout          time.Duration `koanf:"timeout"`           // open -> half-open delay
	MaxRequests      uint32        `koanf:"max_requests"`      // trial requests allowed while half-open
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
