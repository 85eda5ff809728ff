// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/washu/internal/adapter"
	"github.com/MKhiriev/washu/internal/analytics"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/internal/store"
)

type ClientServices struct {
	FavoriteService FavoriteService
	RecentService   RecentService
	CatalogService  CatalogService
}

func NewClientServices(storages *store.ClientStorages, api adapter.SakeAPI, tracker analytics.Tracker, log *logger.Logger) *ClientServices {
	return &ClientServices{
		FavoriteService: NewFavoriteService(storages.Favorite, tracker, log),
		RecentService:   NewRecentService(storages.Recent, log),
		CatalogService:  NewCatalogService(api, tracker, log),
	}
}
