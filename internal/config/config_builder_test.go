// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// Later sources override earlier non-zero values; zero values never erase.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://override:1"},
		Cache:   Cache{Enabled: boolPtr(false)},
	})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "http://override:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout, "default kept")
	require.NotNil(t, cfg.Cache.Enabled)
	assert.False(t, *cfg.Cache.Enabled)
}

func TestBuilder_EnvFlagsFile(t *testing.T) {
	path := writeTempConfig(t, "washu.json", `{"adapter": {"request_timeout": "9s"}}`)
	t.Setenv("ADAPTER_ADDRESS", "http://from-env:8000")
	t.Setenv("WORKERS_PROBE_INTERVAL", "10s")

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-probe-interval", "20s", "-c", path}).
		withFile().
		build()

	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Workers.ProbeInterval, "flags override env")
	assert.Equal(t, 9*time.Second, cfg.Adapter.RequestTimeout, "file overrides defaults")
}

func TestBuilder_FlagErrorIsCollected(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-probe-interval", "x"}).build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occurred during building config")
}

func TestBuilder_NoFileIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}
