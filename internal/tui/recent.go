// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/washu/internal/service"
	"github.com/MKhiriev/washu/internal/viewmodel"
	"github.com/MKhiriev/washu/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// recentModel lists recently viewed sake from local storage.
type recentModel struct {
	recent    service.RecentService
	favorites *viewmodel.Favorites

	items   []models.RecentItem
	idx     int
	loading bool
}

func newRecentModel(recent service.RecentService, favorites *viewmodel.Favorites) *recentModel {
	return &recentModel{recent: recent, favorites: favorites, loading: true}
}

func (m *recentModel) Init() tea.Cmd { return nil }

func (m *recentModel) Enter(ctx context.Context, _ any) tea.Cmd {
	m.loading = true
	recent := m.recent
	return func() tea.Msg {
		return recentLoadedMsg{items: recent.ListRecent(ctx, models.MaxRecentItems)}
	}
}

func (m *recentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recentLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.idx = clampCursor(m.idx, len(m.items))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.back):
			return m, navigate(pageHome, nil)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if m.idx < len(m.items) {
				return m, navigate(pageDetail, openDetail{Ref: m.items[m.idx].SakeRef, From: pageRecent})
			}
		}
	}
	return m, nil
}

func (m *recentModel) View() string {
	var body string
	switch {
	case m.loading:
		body = "Loading..."
	case len(m.items) == 0:
		body = "Nothing viewed yet"
	default:
		rows := make([]string, 0, len(m.items))
		for _, it := range m.items {
			line := sakeLine(it.Name, it.Brewery, it.Region, m.favorites.IsFavorite(it.ID))
			rows = append(rows, line+"  "+helpStyle.Render(time.UnixMilli(it.ViewedAt).Format("Jan 2 15:04")))
		}
		body = renderRows(rows, m.idx)
	}
	return renderPage("RECENTLY VIEWED", body, "enter: open │ ↑/↓: move │ esc: home")
}
