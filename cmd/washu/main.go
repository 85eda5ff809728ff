// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"

	"github.com/MKhiriev/washu/internal/adapter"
	"github.com/MKhiriev/washu/internal/analytics"
	"github.com/MKhiriev/washu/internal/client"
	"github.com/MKhiriev/washu/internal/config"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/internal/network"
	"github.com/MKhiriev/washu/internal/service"
	"github.com/MKhiriev/washu/internal/store"
	"github.com/MKhiriev/washu/internal/tui"
	"github.com/MKhiriev/washu/internal/utils"
	"github.com/MKhiriev/washu/internal/viewmodel"
	"github.com/MKhiriev/washu/internal/workers"
	"github.com/MKhiriev/washu/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("washu", "info").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version != "" {
		buildInfo.Version = cfg.App.Version
	}

	log := logger.NewClientLogger("washu", cfg.App.LogLevel)
	log.Info().
		Str("version", buildInfo.Version).
		Str("date", buildInfo.Date).
		Str("commit", buildInfo.Commit).
		Msg("starting washu")
	ctx := log.WithContext(context.Background())

	storages := store.NewClientStorages(ctx, cfg.Storage, log)

	cache := adapter.NewResponseCache(cfg.Cache, log)
	sakeAPI, err := adapter.NewHTTPSakeAPI(cfg.Adapter, cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog adapter")
	}

	tracker := analytics.NewLogTracker(log, utils.NewUUIDGenerator())
	services := service.NewClientServices(storages, sakeAPI, tracker, log)

	observer := network.NewObserver(true)
	probe := network.NewProbe(sakeAPI, observer, cfg.Workers.ProbeInterval, log)
	favorites := viewmodel.NewFavorites(services.FavoriteService, log)

	ui, err := tui.New(tui.Dependencies{
		Services:   services,
		Favorites:  favorites,
		Observer:   observer,
		Tracker:    tracker,
		BuildInfo:  buildInfo,
		Persistent: storages.Persistent,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, favorites, workers.NewWorkers(probe), storages.Close, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
