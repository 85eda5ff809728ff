// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/washu/internal/service"
	"github.com/MKhiriev/washu/internal/viewmodel"
	"github.com/MKhiriev/washu/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var writeClipboard = clipboard.WriteAll

// detailModel shows one sake, records the visit and toggles the favorite.
// The ref it was opened with keeps the favorite toggle usable when the
// detail itself cannot be loaded.
type detailModel struct {
	catalog   service.CatalogService
	recent    service.RecentService
	favorites *viewmodel.Favorites

	ctx context.Context
	seq uint64

	ref     models.SakeRef
	from    string
	detail  *models.SakeDetail
	loading bool
	err     error
	status  string
}

func newDetailModel(catalog service.CatalogService, recent service.RecentService, favorites *viewmodel.Favorites) *detailModel {
	return &detailModel{
		catalog:   catalog,
		recent:    recent,
		favorites: favorites,
		ctx:       context.Background(),
		from:      pageHome,
	}
}

func (m *detailModel) Init() tea.Cmd { return nil }

func (m *detailModel) Enter(ctx context.Context, payload any) tea.Cmd {
	m.ctx = ctx
	if open, ok := payload.(openDetail); ok {
		m.ref = open.Ref
		m.from = open.From
		if m.from == "" {
			m.from = pageHome
		}
		m.detail = nil
	}
	m.status = ""
	if m.detail != nil || m.ref.ID == 0 {
		return nil
	}
	return m.load()
}

func (m *detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			if !service.IsAbandoned(msg.err) {
				m.err = msg.err
			}
			return m, nil
		}
		m.err = nil
		m.detail = &msg.detail
		m.ref = msg.detail.Ref()
		return m, m.cmdAddRecent(m.ref)
	case favoriteToggledMsg:
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.back):
			return m, navigate(m.from, nil)
		case key.Matches(msg, keys.favorite):
			if m.ref.ID == 0 {
				return m, nil
			}
			done := m.favorites.ToggleFavorite(m.ctx, m.ref)
			id := m.ref.ID
			return m, func() tea.Msg {
				<-done
				return favoriteToggledMsg{id: id}
			}
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.ref.Name)
		case key.Matches(msg, keys.retry):
			if m.err != nil && !m.loading {
				return m, m.load()
			}
		}
	}
	return m, nil
}

func (m *detailModel) load() tea.Cmd {
	m.seq++
	m.loading = true
	m.err = nil

	ctx := m.ctx
	seq := m.seq
	id := m.ref.ID
	catalog := m.catalog
	return func() tea.Msg {
		detail, err := catalog.GetDetail(ctx, id)
		return detailLoadedMsg{seq: seq, detail: detail, err: err}
	}
}

// cmdAddRecent records the visit. The write outlives the page so a quick
// back navigation does not lose it.
func (m *detailModel) cmdAddRecent(ref models.SakeRef) tea.Cmd {
	ctx := context.WithoutCancel(m.ctx)
	recent := m.recent
	return func() tea.Msg {
		recent.AddRecent(ctx, models.RecentItem{SakeRef: ref})
		return nil
	}
}

func (m *detailModel) View() string {
	var b strings.Builder

	favorite := m.favorites.IsFavorite(m.ref.ID)
	title := m.ref.Name
	if favorite {
		title = starStyle.Render("★") + " " + title
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.ref.Brewery + " · " + m.ref.Region)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.err != nil:
		b.WriteString(errorText(m.err))
	case m.detail != nil:
		b.WriteString(renderDetailFields(*m.detail))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	toggle := "f: add to favorites"
	if favorite {
		toggle = "f: remove from favorites"
	}
	return renderPage("SAKE", b.String(), toggle+" │ c: copy name │ esc: back")
}

func renderDetailFields(d models.SakeDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rice:         %s\n", valueOrDash(d.Rice))
	fmt.Fprintf(&b, "Polishing:    %s\n", numberOrDash(d.Seimaibuai, "%"))
	fmt.Fprintf(&b, "Nihonshu-do:  %s\n", numberOrDash(d.Nihonshudo, ""))
	fmt.Fprintf(&b, "Acidity:      %s\n", numberOrDash(d.Acid, ""))
	fmt.Fprintf(&b, "Alcohol:      %s\n", numberOrDash(d.Alcohol, "%"))
	fmt.Fprintf(&b, "Tags:         %s\n", listOrDash(d.Tags))
	fmt.Fprintf(&b, "Taste:        %s\n", listOrDash(d.TasteTags))
	if d.Description != nil && strings.TrimSpace(*d.Description) != "" {
		b.WriteString("\n")
		b.WriteString(*d.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
