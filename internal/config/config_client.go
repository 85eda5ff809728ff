// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// Version is the version label shown in the UI.
	Version string
	// LogLevel is the zerolog level name.
	LogLevel string `validate:"required|in:trace,debug,info,warn,error"`
}

// ClientAdapter holds network settings of the REST client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the catalog backend.
	HTTPAddress string `validate:"required"`
	// RequestTimeout is the timeout applied to every outbound request.
	RequestTimeout time.Duration `validate:"required"`
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path, ":memory:", or empty for no persistence.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientCache holds the resolved response cache settings.
type ClientCache struct {
	Enabled bool
	SizeMB  int
	TTL     time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProbeInterval defines how often the connectivity probe runs.
	ProbeInterval time.Duration `validate:"required"`
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Cache   ClientCache
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg that are relevant to the client
// runtime. It does not validate the result.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	cacheEnabled := cfg.Cache.Enabled != nil && *cfg.Cache.Enabled

	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Cache: ClientCache{
			Enabled: cacheEnabled,
			SizeMB:  cfg.Cache.SizeMB,
			TTL:     cfg.Cache.TTL,
		},
		Workers: ClientWorkers{ProbeInterval: cfg.Workers.ProbeInterval},
	}
}
