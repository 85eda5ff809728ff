// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/internal/store"
	"github.com/MKhiriev/washu/models"
)

type recentService struct {
	repo   store.RecentRepository
	logger *logger.Logger
}

func NewRecentService(repo store.RecentRepository, log *logger.Logger) RecentService {
	return &recentService{repo: repo, logger: log}
}

func (r *recentService) ListRecent(ctx context.Context, limit int) []models.RecentItem {
	items, err := r.repo.ListRecent(ctx, limit)
	if err != nil {
		r.logger.Warn().Err(err).Str("func", "recentService.ListRecent").Msg("failed to read recent sake list")
		return []models.RecentItem{}
	}
	return items
}

func (r *recentService) AddRecent(ctx context.Context, item models.RecentItem) {
	if err := r.repo.AddRecent(ctx, item); err != nil {
		r.logger.Warn().Err(err).Str("func", "recentService.AddRecent").Int64("id", item.ID).Msg("failed to save recent sake list")
	}
}
