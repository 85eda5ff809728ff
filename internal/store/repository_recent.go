// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/models"
)

const (
	// RecentStoreName is the logical store holding the recent list.
	RecentStoreName = "recent_sake"
	// recentListKey is the single key the whole recent list lives under.
	recentListKey = "recent_sake"
)

type recentRepository struct {
	store  RecordStore
	logger *logger.Logger
	now    func() time.Time

	// mu serialises read-modify-write cycles on the list.
	mu sync.Mutex
}

func NewRecentRepository(store RecordStore, log *logger.Logger) RecentRepository {
	return &recentRepository{store: store, logger: log, now: time.Now}
}

func (r *recentRepository) ListRecent(ctx context.Context, limit int) ([]models.RecentItem, error) {
	if limit < 0 || limit > models.MaxRecentItems {
		limit = models.MaxRecentItems
	}

	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	sortRecentNewestFirst(items)
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *recentRepository) AddRecent(ctx context.Context, item models.RecentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.load(ctx)
	if err != nil {
		return err
	}

	if item.ViewedAt == 0 {
		item.ViewedAt = r.now().UnixMilli()
	}

	next := make([]models.RecentItem, 0, len(existing)+1)
	next = append(next, item)
	for _, rec := range existing {
		if rec.ID != item.ID {
			next = append(next, rec)
		}
	}

	// newest first, so truncation drops the oldest by ViewedAt
	sortRecentNewestFirst(next)
	if len(next) > models.MaxRecentItems {
		next = next[:models.MaxRecentItems]
	}

	raw, err := encodeRecord(next)
	if err != nil {
		return err
	}
	if err = r.store.Set(ctx, recentListKey, raw); err != nil {
		return fmt.Errorf("save recent list: %w", err)
	}

	r.logger.Debug().
		Str("func", "recentRepository.AddRecent").
		Int64("id", item.ID).
		Int("size", len(next)).
		Msg("recent list updated")
	return nil
}

func (r *recentRepository) load(ctx context.Context) ([]models.RecentItem, error) {
	raw, found, err := r.store.Get(ctx, recentListKey)
	if err != nil {
		return nil, fmt.Errorf("load recent list: %w", err)
	}
	if !found {
		return []models.RecentItem{}, nil
	}
	return decodeRecentList(raw), nil
}

func sortRecentNewestFirst(items []models.RecentItem) {
	slices.SortStableFunc(items, func(a, b models.RecentItem) int {
		return cmp.Compare(b.ViewedAt, a.ViewedAt)
	})
}
