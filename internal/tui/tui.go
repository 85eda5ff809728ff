// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end: a page router with home, search,
// detail, recent and favorites pages.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/washu/internal/analytics"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/internal/network"
	"github.com/MKhiriev/washu/internal/service"
	"github.com/MKhiriev/washu/internal/viewmodel"
	"github.com/MKhiriev/washu/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Dependencies are the collaborators shared by all pages.
type Dependencies struct {
	Services   *service.ClientServices
	Favorites  *viewmodel.Favorites
	Observer   *network.Observer
	Tracker    analytics.Tracker
	BuildInfo  models.AppBuildInfo
	Persistent bool
}

type TUI struct {
	deps   Dependencies
	logger *logger.Logger
}

func New(deps Dependencies, log *logger.Logger) (*TUI, error) {
	if deps.Services == nil || deps.Favorites == nil || deps.Observer == nil {
		return nil, errors.New("tui: services, favorites and observer are required")
	}
	if deps.Tracker == nil {
		deps.Tracker = analytics.Nop()
	}
	return &TUI{deps: deps, logger: log}, nil
}

// Run shows the UI until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	netCh, stopNet := t.deps.Observer.Subscribe()
	defer stopNet()
	favCh, stopFav := t.deps.Favorites.Subscribe()
	defer stopFav()
	root.network = netCh
	root.favorites = favCh
	defer root.close()

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if result, ok := finalModel.(*RootModel); ok && result.quitByUser {
		t.logger.Info().Msg("user quit")
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context) *RootModel {
	pages := map[string]page{
		pageHome:      newHomeModel(),
		pageSearch:    newSearchModel(t.deps.Services.CatalogService, t.deps.Favorites),
		pageDetail:    newDetailModel(t.deps.Services.CatalogService, t.deps.Services.RecentService, t.deps.Favorites),
		pageRecent:    newRecentModel(t.deps.Services.RecentService, t.deps.Favorites),
		pageFavorites: newFavoritesModel(t.deps.Favorites),
	}
	return NewRootModel(ctx, pages, pageHome, t.deps)
}
