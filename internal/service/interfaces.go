// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client use cases on top of the local
// repositories and the catalog API, and applies the error policy of each:
// local storage failures are recoverable and absorbed, remote failures are
// fatal for the call that produced them.
package service

import (
	"context"

	"github.com/MKhiriev/washu/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FavoriteService exposes the favorites list.
type FavoriteService interface {
	// ListFavorites returns the favorites, newest first. Storage failures
	// are logged and yield an empty list.
	ListFavorites(ctx context.Context) []models.FavoriteItem

	// AddFavorite stores item. A non-nil error is always recoverable: it has
	// been logged and only tells the caller that persisted state may differ
	// from what it assumed.
	AddFavorite(ctx context.Context, item models.FavoriteItem) error

	// RemoveFavorite deletes the favorite with id. Errors follow the same
	// policy as AddFavorite.
	RemoveFavorite(ctx context.Context, id int64) error
}

// RecentService exposes the recently viewed list. It never fails.
type RecentService interface {
	ListRecent(ctx context.Context, limit int) []models.RecentItem
	AddRecent(ctx context.Context, item models.RecentItem)
}

// CatalogService reads the remote catalog. Every error it returns is fatal
// for the call and can be rendered with [UserMessage].
type CatalogService interface {
	Search(ctx context.Context, params models.SearchParams) (models.SearchResult, error)
	GetDetail(ctx context.Context, id int64) (models.SakeDetail, error)
	GetRegions(ctx context.Context) ([]string, error)
	GetTasteTags(ctx context.Context) ([]string, error)
}
