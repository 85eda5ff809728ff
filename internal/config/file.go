// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors [StructuredConfig] with JSON/TOML field names.
type fileConfig struct {
	App struct {
		Version  string `json:"version" toml:"version"`
		LogLevel string `json:"log_level" toml:"log_level"`
	} `json:"app" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" toml:"adapter"`

	Cache struct {
		Enabled *bool    `json:"enabled" toml:"enabled"`
		SizeMB  int      `json:"size_mb" toml:"size_mb"`
		TTL     Duration `json:"ttl" toml:"ttl"`
	} `json:"cache" toml:"cache"`

	Workers struct {
		ProbeInterval Duration `json:"probe_interval" toml:"probe_interval"`
	} `json:"workers" toml:"workers"`
}

// parseFile reads a JSON or TOML config file; the format is chosen by the
// file extension (.json, .toml).
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  fc.App.Version,
			LogLevel: fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Cache: Cache{
			Enabled: fc.Cache.Enabled,
			SizeMB:  fc.Cache.SizeMB,
			TTL:     time.Duration(fc.Cache.TTL),
		},
		Workers: Workers{
			ProbeInterval: time.Duration(fc.Workers.ProbeInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in JSON and TOML, and from raw nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
