// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/washu/internal/analytics"
	"github.com/MKhiriev/washu/internal/app"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/internal/store"
	"github.com/MKhiriev/washu/models"
)

type favoriteService struct {
	repo    store.FavoriteRepository
	tracker analytics.Tracker
	logger  *logger.Logger
}

func NewFavoriteService(repo store.FavoriteRepository, tracker analytics.Tracker, log *logger.Logger) FavoriteService {
	return &favoriteService{repo: repo, tracker: tracker, logger: log}
}

func (f *favoriteService) ListFavorites(ctx context.Context) []models.FavoriteItem {
	items, err := f.repo.ListFavorites(ctx)
	if err != nil {
		f.logger.Warn().Err(err).Str("func", "favoriteService.ListFavorites").Msg("failed to read favorite sake list")
		return []models.FavoriteItem{}
	}
	return items
}

func (f *favoriteService) AddFavorite(ctx context.Context, item models.FavoriteItem) error {
	if err := f.repo.AddFavorite(ctx, item); err != nil {
		f.logger.Warn().Err(err).Str("func", "favoriteService.AddFavorite").Int64("id", item.ID).Msg("failed to save favorite sake")
		return app.Recoverable(fmt.Errorf("add favorite %d: %w", item.ID, err))
	}

	f.tracker.Track(analytics.EventFavoriteAdd, analytics.Params{"id": item.ID, "name": item.Name})
	return nil
}

func (f *favoriteService) RemoveFavorite(ctx context.Context, id int64) error {
	if err := f.repo.RemoveFavorite(ctx, id); err != nil {
		f.logger.Warn().Err(err).Str("func", "favoriteService.RemoveFavorite").Int64("id", id).Msg("failed to remove favorite sake")
		return app.Recoverable(fmt.Errorf("remove favorite %d: %w", id, err))
	}

	f.tracker.Track(analytics.EventFavoriteRemove, analytics.Params{"id": id})
	return nil
}
