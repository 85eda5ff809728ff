// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns everything the client persists on the device.
//
// Persistence is organised as independent logical stores, each a mapping
// from string key to an encoded record ([RecordStore]). Two logical stores
// exist: one holds the recently viewed list as a single array value, the
// other holds favorites either as one legacy array or as one record per
// sake. Repositories on top of them implement the list semantics and the
// legacy favorites migration.
//
// Backends: SQLite (a file DSN), in-process memory (":memory:") and a no-op
// backend used when persistence is unavailable.
package store

import (
	"context"

	"github.com/MKhiriev/washu/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStore is one logical key-value store.
type RecordStore interface {
	// Get returns the raw record under key. found is false when the key does
	// not exist.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set stores value under key, replacing any existing record.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Keys lists every key currently present.
	Keys(ctx context.Context) ([]string, error)
}

// RecentRepository manages the recently viewed list.
type RecentRepository interface {
	// ListRecent returns at most limit valid items, newest first. A negative
	// limit means MaxRecentItems.
	ListRecent(ctx context.Context, limit int) ([]models.RecentItem, error)
	// AddRecent moves item to the front of the list, stamping ViewedAt when
	// it is zero and evicting the oldest entries beyond capacity.
	AddRecent(ctx context.Context, item models.RecentItem) error
}

// FavoriteRepository manages the favorites list.
type FavoriteRepository interface {
	// MigrateLegacy rewrites the legacy aggregate list into per-item records
	// and returns the migrated items, or nil when there was nothing to do.
	MigrateLegacy(ctx context.Context) ([]models.FavoriteItem, error)
	// ListFavorites returns every valid favorite, most recently added first.
	ListFavorites(ctx context.Context) ([]models.FavoriteItem, error)
	// AddFavorite stores item, stamping FavoritedAt when it is zero.
	AddFavorite(ctx context.Context, item models.FavoriteItem) error
	// RemoveFavorite deletes the favorite with the given id, if any.
	RemoveFavorite(ctx context.Context, id int64) error
}
