// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/washu/internal/config"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/coocood/freecache"
	"github.com/klauspost/compress/zstd"
)

type compressedCache struct {
	cache   *freecache.Cache
	ttl     int
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	logger  *logger.Logger
}

// NewResponseCache returns a freecache-backed cache holding zstd-compressed
// bodies, or a no-op cache when caching is disabled or cannot be set up.
func NewResponseCache(cfg config.ClientCache, log *logger.Logger) ResponseCache {
	if !cfg.Enabled || cfg.SizeMB <= 0 {
		log.Info().Msg("response cache disabled")
		return noopCache{}
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		log.Warn().Err(err).Msg("failed to create zstd encoder, response cache disabled")
		return noopCache{}
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		log.Warn().Err(err).Msg("failed to create zstd decoder, response cache disabled")
		return noopCache{}
	}

	ttl := max(int(cfg.TTL.Seconds()), 1)
	log.Info().Int("size_mb", cfg.SizeMB).Int("ttl_seconds", ttl).Msg("response cache initialized")

	return &compressedCache{
		cache:   freecache.NewCache(cfg.SizeMB * 1024 * 1024),
		ttl:     ttl,
		encoder: encoder,
		decoder: decoder,
		logger:  log,
	}
}

func (c *compressedCache) Get(key string) ([]byte, bool) {
	compressed, err := c.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}

	body, err := c.decoder.DecodeAll(compressed, nil)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
		c.cache.Del([]byte(key))
		return nil, false
	}
	return body, true
}

func (c *compressedCache) Set(key string, value []byte) {
	compressed := c.encoder.EncodeAll(value, make([]byte, 0, len(value)))
	if err := c.cache.Set([]byte(key), compressed, c.ttl); err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("response not cached")
	}
}

type noopCache struct{}

func (noopCache) Get(string) ([]byte, bool) { return nil, false }
func (noopCache) Set(string, []byte)        {}
