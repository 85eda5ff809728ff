// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package viewmodel holds in-memory projections of local state that the
// terminal UI renders.
package viewmodel

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/washu/internal/app"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/internal/service"
	"github.com/MKhiriev/washu/models"
)

// Status is the load state of a view-model.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
)

func (s Status) String() string {
	if s == StatusReady {
		return "ready"
	}
	return "loading"
}

// FavoritesState is an immutable snapshot of the favorites view-model.
// Version grows by one on every change.
type FavoritesState struct {
	Status  Status
	Items   []models.FavoriteItem
	Version uint64
}

// Favorites is the in-memory favorites list. It is owned by whoever
// created it and is only resynchronized with storage through Refresh.
type Favorites struct {
	service service.FavoriteService
	logger  *logger.Logger
	now     func() time.Time

	mu    sync.RWMutex
	state FavoritesState
	ids   map[int64]struct{}
	subs  map[chan FavoritesState]struct{}

	writes sync.WaitGroup
}

func NewFavorites(svc service.FavoriteService, log *logger.Logger) *Favorites {
	return &Favorites{
		service: svc,
		logger:  log,
		now:     time.Now,
		state:   FavoritesState{Status: StatusLoading, Items: []models.FavoriteItem{}},
		ids:     make(map[int64]struct{}),
		subs:    make(map[chan FavoritesState]struct{}),
	}
}

// Snapshot returns the current state. Items must not be modified.
func (f *Favorites) Snapshot() FavoritesState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// IsFavorite reports membership in the in-memory list.
func (f *Favorites) IsFavorite(id int64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.ids[id]
	return ok
}

// Refresh reloads the list from storage. Storage failures end in Ready with
// whatever the service returned. When ctx is done before the read finishes
// the current list is kept, since an abandoned read says nothing about what
// is stored.
func (f *Favorites) Refresh(ctx context.Context) {
	f.mu.Lock()
	f.setLocked(StatusLoading, f.state.Items)
	f.mu.Unlock()

	items := f.service.ListFavorites(ctx)

	f.mu.Lock()
	if ctx.Err() != nil {
		f.logger.Debug().Err(ctx.Err()).Str("func", "Favorites.Refresh").Msg("refresh abandoned, keeping current favorites")
		items = f.state.Items
	}
	f.setLocked(StatusReady, items)
	f.mu.Unlock()
}

// ToggleFavorite flips membership of ref in memory before returning, then
// persists the change in the background. A failed write triggers Refresh.
// The returned channel is closed once the write and any refresh are done.
func (f *Favorites) ToggleFavorite(ctx context.Context, ref models.SakeRef) <-chan struct{} {
	f.mu.Lock()
	_, present := f.ids[ref.ID]
	var item models.FavoriteItem
	if present {
		items := slices.DeleteFunc(slices.Clone(f.state.Items), func(it models.FavoriteItem) bool {
			return it.ID == ref.ID
		})
		f.setLocked(f.state.Status, items)
	} else {
		item = models.FavoriteItem{SakeRef: ref, FavoritedAt: f.now().UnixMilli()}
		items := make([]models.FavoriteItem, 0, len(f.state.Items)+1)
		items = append(items, item)
		items = append(items, f.state.Items...)
		f.setLocked(f.state.Status, items)
	}
	f.mu.Unlock()

	// the write outlives the page that started it
	writeCtx := context.WithoutCancel(ctx)
	done := make(chan struct{})
	f.writes.Add(1)
	go func() {
		defer f.writes.Done()
		defer close(done)

		var err error
		if present {
			err = f.service.RemoveFavorite(writeCtx, ref.ID)
		} else {
			err = f.service.AddFavorite(writeCtx, item)
		}
		if err == nil {
			return
		}

		f.logger.Debug().Err(err).Bool("recoverable", app.IsRecoverable(err)).Int64("id", ref.ID).
			Msg("favorite write failed, reloading favorites")
		f.Refresh(writeCtx)
	}()

	return done
}

// Wait blocks until every pending write has finished.
func (f *Favorites) Wait() {
	f.writes.Wait()
}

// Subscribe returns a channel receiving the latest state after each change
// and a function that stops the subscription. Slow readers only see the most
// recent state.
func (f *Favorites) Subscribe() (<-chan FavoritesState, func()) {
	ch := make(chan FavoritesState, 1)

	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, ch)
			f.mu.Unlock()
			close(ch)
		})
	}
}

func (f *Favorites) setLocked(status Status, items []models.FavoriteItem) {
	if items == nil {
		items = []models.FavoriteItem{}
	}

	ids := make(map[int64]struct{}, len(items))
	for _, it := range items {
		ids[it.ID] = struct{}{}
	}

	f.ids = ids
	f.state = FavoritesState{Status: status, Items: items, Version: f.state.Version + 1}

	for ch := range f.subs {
		publishLatest(ch, f.state)
	}
}

func publishLatest(ch chan FavoritesState, state FavoritesState) {
	select {
	case ch <- state:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- state:
	default:
	}
}
