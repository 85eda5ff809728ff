// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/washu/internal/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// favoritesModel renders the favorites view-model. It works from local
// data only, so it stays usable offline.
type favoritesModel struct {
	favorites *viewmodel.Favorites
	ctx       context.Context
	idx       int
}

func newFavoritesModel(favorites *viewmodel.Favorites) *favoritesModel {
	return &favoritesModel{favorites: favorites, ctx: context.Background()}
}

func (m *favoritesModel) Init() tea.Cmd { return nil }

func (m *favoritesModel) Enter(ctx context.Context, _ any) tea.Cmd {
	m.ctx = ctx
	vm := m.favorites
	// leaving the page must not abort the read and empty the list
	refreshCtx := context.WithoutCancel(ctx)
	return func() tea.Msg {
		vm.Refresh(refreshCtx)
		return nil
	}
}

func (m *favoritesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	items := m.favorites.Snapshot().Items

	switch msg := msg.(type) {
	case favoritesChangedMsg:
		m.idx = clampCursor(m.idx, len(msg.Items))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.back):
			return m, navigate(pageHome, nil)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if m.idx < len(items) {
				return m, navigate(pageDetail, openDetail{Ref: items[m.idx].SakeRef, From: pageFavorites})
			}
		case key.Matches(msg, keys.favorite):
			if m.idx < len(items) {
				m.favorites.ToggleFavorite(m.ctx, items[m.idx].SakeRef)
				m.idx = clampCursor(m.idx, len(items)-1)
			}
		}
	}
	return m, nil
}

func (m *favoritesModel) View() string {
	state := m.favorites.Snapshot()

	var body string
	switch {
	case state.Status == viewmodel.StatusLoading && len(state.Items) == 0:
		body = "Loading..."
	case len(state.Items) == 0:
		body = "No favorites yet. Press f on a sake to add it."
	default:
		rows := make([]string, 0, len(state.Items))
		for _, it := range state.Items {
			rows = append(rows, sakeLine(it.Name, it.Brewery, it.Region, true))
		}
		body = renderRows(rows, clampCursor(m.idx, len(state.Items)))
	}
	return renderPage("FAVORITES", body, "enter: open │ f: remove │ ↑/↓: move │ esc: home")
}
