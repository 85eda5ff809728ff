// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(Defaults())
}

func TestNewClientConfig_FromDefaults(t *testing.T) {
	cfg := validClientConfig()

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "washu.db", cfg.Storage.DB.DSN)
	require.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{
			name:   "empty dsn disables persistence and is valid",
			mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" },
		},
		{
			name:    "missing address",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = -time.Second },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *ClientConfig) { c.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero probe interval",
			mutate:  func(c *ClientConfig) { c.Workers.ProbeInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "enabled cache without size",
			mutate:  func(c *ClientConfig) { c.Cache.SizeMB = 0 },
			wantErr: ErrInvalidCacheConfigs,
		},
		{
			name: "disabled cache without size",
			mutate: func(c *ClientConfig) {
				c.Cache.Enabled = false
				c.Cache.SizeMB = 0
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
