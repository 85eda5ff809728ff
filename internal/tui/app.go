// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/washu/internal/analytics"
	"github.com/MKhiriev/washu/internal/app"
	"github.com/MKhiriev/washu/internal/viewmodel"
	"github.com/MKhiriev/washu/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageHome      = "home"
	pageSearch    = "search"
	pageDetail    = "detail"
	pageRecent    = "recent"
	pageFavorites = "favorites"
)

// page is a screen managed by RootModel. Enter is called every time the
// page becomes active; ctx is cancelled as soon as the page is left.
type page interface {
	tea.Model
	Enter(ctx context.Context, payload any) tea.Cmd
}

// RootModel is a TUI router:
// 1) keeps the active page and its context
// 2) handles global quit and the build info window
// 3) handles NavigateTo messages
// 4) shows the offline banner
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	pages   map[string]page
	current string
	leave   context.CancelFunc

	tracker    analytics.Tracker
	buildInfo  models.AppBuildInfo
	persistent bool

	network     <-chan models.NetworkStatus
	favorites   <-chan viewmodel.FavoritesState
	online      bool
	bannerShown bool
	showVersion bool
	quitByUser  bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, pages map[string]page, startPage string, d Dependencies) *RootModel {
	return &RootModel{
		ctx:        ctx,
		pages:      pages,
		current:    startPage,
		tracker:    d.Tracker,
		buildInfo:  d.BuildInfo,
		persistent: d.Persistent,
		online:     d.Observer.IsOnline(),
	}
}

func (r *RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.enter(r.current, nil), waitNetwork(r.network), waitFavorites(r.favorites)}
	if !r.online {
		r.showBanner()
	}
	return tea.Batch(cmds...)
}

func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showVersion {
			if key.Matches(msg, keys.back) || key.Matches(msg, keys.version) {
				r.showVersion = false
			}
			return r, nil
		}
		if r.current == pageHome {
			switch {
			case key.Matches(msg, keys.version):
				r.showVersion = true
				return r, nil
			case key.Matches(msg, keys.quit):
				r.quitByUser = true
				return r, tea.Quit
			}
		}
	case NavigateTo:
		if _, exists := r.pages[msg.Page]; !exists {
			return r, nil
		}
		r.showVersion = false
		return r, r.enter(msg.Page, msg.Payload)
	case networkStatusMsg:
		r.online = msg.IsOnline
		if r.online {
			r.bannerShown = false
		} else {
			r.showBanner()
		}
		updated, cmd := r.delegate(msg)
		return updated, tea.Batch(cmd, waitNetwork(r.network))
	case favoritesChangedMsg:
		updated, cmd := r.delegate(msg)
		return updated, tea.Batch(cmd, waitFavorites(r.favorites))
	}

	return r.delegate(msg)
}

func (r *RootModel) View() string {
	if r.showVersion {
		return renderBuildInfoWindow(r.buildInfo, r.persistent)
	}

	view := ""
	if p, ok := r.pages[r.current]; ok {
		view = p.View()
	}
	if !r.online {
		view = bannerStyle.Render(app.MsgOffline) + "\n\n" + view
	}
	return view
}

func (r *RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	p, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}
	_, cmd := p.Update(msg)
	return r, cmd
}

// enter cancels the active page context and activates name.
func (r *RootModel) enter(name string, payload any) tea.Cmd {
	p, ok := r.pages[name]
	if !ok {
		return nil
	}
	if r.leave != nil {
		r.leave()
	}

	ctx, cancel := context.WithCancel(r.ctx)
	r.leave = cancel
	r.current = name

	r.tracker.Track(analytics.EventScreenView, analytics.Params{"screen": name})
	return p.Enter(ctx, payload)
}

// showBanner tracks the offline banner once per offline period.
func (r *RootModel) showBanner() {
	if r.bannerShown {
		return
	}
	r.bannerShown = true
	r.tracker.Track(analytics.EventOfflineBannerShow, analytics.Params{"screen": r.current})
}

func (r *RootModel) close() {
	if r.leave != nil {
		r.leave()
	}
}

func waitNetwork(ch <-chan models.NetworkStatus) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		status, ok := <-ch
		if !ok {
			return nil
		}
		return networkStatusMsg(status)
	}
}

func waitFavorites(ch <-chan viewmodel.FavoritesState) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		state, ok := <-ch
		if !ok {
			return nil
		}
		return favoritesChangedMsg(state)
	}
}

func navigate(name string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: name, Payload: payload} }
}
