// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strconv"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a backend address (URL or host:port)
//	-d local database DSN (":memory:" for in-memory, "" to disable)
//	-c/-config config file path (JSON or TOML)
//	-request-timeout request timeout (e.g., "10s")
//	-probe-interval connectivity probe interval (e.g., "30s")
//	-log-level log level (debug, info, warn, error)
//	-cache enable or disable the offline response cache
//	-cache-size response cache size in megabytes
//	-cache-ttl response cache TTL (e.g., "24h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("washu", flag.ContinueOnError)

	var (
		address        string
		dsn            string
		configPath     string
		requestTimeout time.Duration
		probeInterval  time.Duration
		logLevel       string
		cacheEnabled   *bool
		cacheSize      int
		cacheTTL       time.Duration
	)

	fs.StringVar(&address, "a", "", "Backend address (URL or host:port)")
	fs.StringVar(&dsn, "d", "", "Local database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Func("cache", "Enable the offline response cache (true/false)", func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid -cache value %q: %w", s, err)
		}
		cacheEnabled = &v
		return nil
	})
	fs.IntVar(&cacheSize, "cache-size", 0, "Response cache size in MB")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Response cache TTL (e.g., 24h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{
			Enabled: cacheEnabled,
			SizeMB:  cacheSize,
			TTL:     cacheTTL,
		},
		Workers: Workers{
			ProbeInterval: probeInterval,
		},
		ConfigFilePath: configPath,
	}, nil
}
