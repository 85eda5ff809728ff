// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version label and
	// the log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the on-device record store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the address and timeout of the catalog REST backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Cache holds the offline response cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or TOML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version label shown in the UI.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of the local persistence layer.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local record database.
type DB struct {
	// DSN is the path of the SQLite file. The special value ":memory:"
	// keeps records in process memory; an empty DSN disables persistence
	// entirely (every store operation becomes a no-op).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the outbound REST client.
type Adapter struct {
	// HTTPAddress is the base URL (or host:port) of the catalog backend.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache configures the network-first response cache used when the backend
// is unreachable.
type Cache struct {
	// Enabled turns the cache on. It is a pointer so that an explicit
	// "false" from a later source overrides an earlier "true".
	// Env: CACHE_ENABLED
	Enabled *bool `env:"ENABLED"`

	// SizeMB is the cache capacity in megabytes.
	// Env: CACHE_SIZE_MB
	SizeMB int `env:"SIZE_MB"`

	// TTL is how long a cached response may be served.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ProbeInterval is how often the connectivity probe pings the backend.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Defaults returns the built-in configuration every other source is merged
// on top of.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Storage: Storage{
			DB: DB{DSN: "washu.db"},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8000",
			RequestTimeout: 15 * time.Second,
		},
		Cache: Cache{
			Enabled: boolPtr(true),
			SizeMB:  8,
			TTL:     24 * time.Hour,
		},
		Workers: Workers{
			ProbeInterval: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}

func boolPtr(v bool) *bool {
	return &v
}
