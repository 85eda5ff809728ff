// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/washu/internal/viewmodel"
	"github.com/MKhiriev/washu/models"
)

// NavigateTo switches the active page. Payload is handed to the page's
// Enter method.
type NavigateTo struct {
	Page    string
	Payload any
}

// openDetail is the payload of the detail page.
type openDetail struct {
	Ref  models.SakeRef
	From string
}

type networkStatusMsg models.NetworkStatus

type favoritesChangedMsg viewmodel.FavoritesState

type regionsLoadedMsg struct {
	regions []string
	err     error
}

type searchDoneMsg struct {
	seq    uint64
	result models.SearchResult
	err    error
}

type detailLoadedMsg struct {
	seq    uint64
	detail models.SakeDetail
	err    error
}

type recentLoadedMsg struct {
	items []models.RecentItem
}

type favoriteToggledMsg struct {
	id int64
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
