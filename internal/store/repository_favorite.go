// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/models"
)

const (
	// FavoriteStoreName is the logical store holding favorites.
	FavoriteStoreName = "favorite_sake"
	// legacyFavoritesKey held the whole favorites list as one array.
	legacyFavoritesKey = "favorite_sake"
	// favoriteKeyPrefix prefixes the per-item favorite keys.
	favoriteKeyPrefix = "favorite:"
)

func favoriteKey(id int64) string {
	return favoriteKeyPrefix + strconv.FormatInt(id, 10)
}

type favoriteRepository struct {
	store  RecordStore
	logger *logger.Logger
	now    func() time.Time

	// mu serialises every operation on the favorites store, migration
	// included.
	mu sync.Mutex
}

func NewFavoriteRepository(store RecordStore, log *logger.Logger) FavoriteRepository {
	return &favoriteRepository{store: store, logger: log, now: time.Now}
}

func (f *favoriteRepository) MigrateLegacy(ctx context.Context) ([]models.FavoriteItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.migrateLegacy(ctx)
}

// migrateLegacy moves the legacy array into per-item records. Each valid
// element is written byte for byte as it was stored in the array. Unlike a
// plain copy, a per-item record that already holds a valid favorite is kept
// as is, so a write that raced the migration is never overwritten by older
// legacy data. The legacy key is deleted last so an interrupted run is
// finished by the next call.
func (f *favoriteRepository) migrateLegacy(ctx context.Context) ([]models.FavoriteItem, error) {
	raw, found, err := f.store.Get(ctx, legacyFavoritesKey)
	if err != nil {
		return nil, fmt.Errorf("read legacy favorites: %w", err)
	}
	if !found {
		return nil, nil
	}

	legacy, ok := decodeFavoriteList(raw)
	if !ok {
		return nil, nil
	}

	migrated := make([]models.FavoriteItem, 0, len(legacy))
	seen := make(map[int64]struct{}, len(legacy))
	for _, entry := range legacy {
		if _, dup := seen[entry.Item.ID]; dup {
			continue
		}
		seen[entry.Item.ID] = struct{}{}

		current, err := f.writeIfAbsent(ctx, entry)
		if err != nil {
			return nil, err
		}
		migrated = append(migrated, current)
	}

	if err = f.store.Remove(ctx, legacyFavoritesKey); err != nil {
		return nil, fmt.Errorf("remove legacy favorites: %w", err)
	}

	f.logger.Info().
		Str("func", "favoriteRepository.migrateLegacy").
		Int("count", len(migrated)).
		Msg("legacy favorites migrated")

	return migrated, nil
}

func (f *favoriteRepository) writeIfAbsent(ctx context.Context, entry legacyFavorite) (models.FavoriteItem, error) {
	key := favoriteKey(entry.Item.ID)

	raw, found, err := f.store.Get(ctx, key)
	if err != nil {
		return models.FavoriteItem{}, fmt.Errorf("read favorite %s: %w", key, err)
	}
	if found {
		if existing, decodeErr := decodeFavoriteItem(raw); decodeErr == nil {
			return existing, nil
		}
	}

	if err = f.store.Set(ctx, key, entry.Raw); err != nil {
		return models.FavoriteItem{}, fmt.Errorf("save favorite %s: %w", key, err)
	}
	return entry.Item, nil
}

func (f *favoriteRepository) ListFavorites(ctx context.Context) ([]models.FavoriteItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.migrateLegacy(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		if items, err = f.loadItems(ctx); err != nil {
			return nil, err
		}
	}

	slices.SortStableFunc(items, func(a, b models.FavoriteItem) int {
		return cmp.Compare(b.FavoritedAt, a.FavoritedAt)
	})
	return items, nil
}

// loadItems reads every per-item record. Records that cannot be read or
// decoded are skipped.
func (f *favoriteRepository) loadItems(ctx context.Context) ([]models.FavoriteItem, error) {
	keys, err := f.store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorite keys: %w", err)
	}

	items := make([]models.FavoriteItem, 0, len(keys))
	for _, key := range keys {
		if !strings.HasPrefix(key, favoriteKeyPrefix) {
			continue
		}

		raw, found, err := f.store.Get(ctx, key)
		if err != nil || !found {
			f.logger.Warn().Err(err).Str("key", key).Msg("skipping unreadable favorite")
			continue
		}
		item, err := decodeFavoriteItem(raw)
		if err != nil {
			f.logger.Warn().Err(err).Str("key", key).Msg("skipping malformed favorite")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (f *favoriteRepository) AddFavorite(ctx context.Context, item models.FavoriteItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if item.FavoritedAt == 0 {
		item.FavoritedAt = f.now().UnixMilli()
	}
	if _, err := f.migrateLegacy(ctx); err != nil {
		return err
	}
	return f.put(ctx, item)
}

func (f *favoriteRepository) RemoveFavorite(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.migrateLegacy(ctx); err != nil {
		return err
	}
	if err := f.store.Remove(ctx, favoriteKey(id)); err != nil {
		return fmt.Errorf("remove favorite %d: %w", id, err)
	}
	return nil
}

func (f *favoriteRepository) put(ctx context.Context, item models.FavoriteItem) error {
	raw, err := encodeRecord(item)
	if err != nil {
		return err
	}
	if err = f.store.Set(ctx, favoriteKey(item.ID), raw); err != nil {
		return fmt.Errorf("save favorite %d: %w", item.ID, err)
	}
	return nil
}
