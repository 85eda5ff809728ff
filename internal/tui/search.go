// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/washu/internal/service"
	"github.com/MKhiriev/washu/internal/viewmodel"
	"github.com/MKhiriev/washu/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const allRegions = ""

// searchModel runs catalog searches. Every request carries a sequence
// number; a result whose number is not the latest is dropped.
type searchModel struct {
	catalog   service.CatalogService
	favorites *viewmodel.Favorites

	ctx    context.Context
	cancel context.CancelFunc
	seq    uint64

	input        textinput.Model
	inputFocused bool
	regions      []string
	regionIdx    int
	regionsErr   error

	params   models.SearchParams
	searched bool
	loading  bool
	result   models.SearchResult
	idx      int
	err      error
}

func newSearchModel(catalog service.CatalogService, favorites *viewmodel.Favorites) *searchModel {
	input := textinput.New()
	input.Placeholder = "name, brewery, taste..."
	input.CharLimit = 100
	input.Width = 40
	input.Focus()

	return &searchModel{
		catalog:      catalog,
		favorites:    favorites,
		ctx:          context.Background(),
		input:        input,
		inputFocused: true,
		regions:      []string{allRegions},
	}
}

func (m *searchModel) Init() tea.Cmd { return nil }

// Enter reloads regions until they are known and repeats a search that was
// cut short by leaving the page.
func (m *searchModel) Enter(ctx context.Context, _ any) tea.Cmd {
	m.ctx = ctx
	m.seq++

	cmds := []tea.Cmd{textinput.Blink}
	if len(m.regions) <= 1 {
		cmds = append(cmds, m.cmdLoadRegions())
	}
	if m.loading {
		cmds = append(cmds, m.runSearch(m.params))
	}
	return tea.Batch(cmds...)
}

func (m *searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case regionsLoadedMsg:
		m.regionsErr = msg.err
		if msg.err == nil {
			m.regions = append([]string{allRegions}, msg.regions...)
			m.regionIdx = clampCursor(m.regionIdx, len(m.regions))
		}
		return m, nil
	case searchDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.setFocus(false)
		if msg.err != nil {
			if service.IsAbandoned(msg.err) {
				return m, nil
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.result = msg.result
		m.idx = 0
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.inputFocused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *searchModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.back):
		return m, navigate(pageHome, nil)
	case key.Matches(msg, keys.nextRegion):
		return m, m.cycleRegion(1)
	case key.Matches(msg, keys.prevRegion):
		return m, m.cycleRegion(-1)
	}

	if m.inputFocused {
		switch {
		case key.Matches(msg, keys.enter):
			return m, m.runSearch(models.SearchParams{Query: m.input.Value(), Region: m.region(), Page: 1})
		case msg.Type == tea.KeyDown && len(m.result.Items) > 0:
			m.setFocus(false)
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx == 0 {
			m.setFocus(true)
			return m, textinput.Blink
		}
		m.idx--
	case key.Matches(msg, keys.down):
		if m.idx < len(m.result.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if m.idx < len(m.result.Items) {
			return m, navigate(pageDetail, openDetail{Ref: m.result.Items[m.idx].Ref(), From: pageSearch})
		}
	case key.Matches(msg, keys.nextPage):
		if !m.loading && m.err == nil && m.result.HasNextPage() {
			next := m.params
			next.Page = m.result.Page + 1
			return m, m.runSearch(next)
		}
	case key.Matches(msg, keys.prevPage):
		if !m.loading && m.err == nil && m.result.Page > 1 {
			prev := m.params
			prev.Page = m.result.Page - 1
			return m, m.runSearch(prev)
		}
	case key.Matches(msg, keys.retry):
		if m.err != nil && !m.loading {
			return m, m.runSearch(m.params)
		}
	case key.Matches(msg, keys.editQuery):
		m.setFocus(true)
		return m, textinput.Blink
	}
	return m, nil
}

func (m *searchModel) cycleRegion(step int) tea.Cmd {
	n := len(m.regions)
	m.regionIdx = ((m.regionIdx+step)%n + n) % n
	if !m.searched {
		return nil
	}
	params := m.params
	params.Region = m.region()
	params.Page = 1
	return m.runSearch(params)
}

func (m *searchModel) region() string {
	return m.regions[m.regionIdx]
}

func (m *searchModel) setFocus(input bool) {
	m.inputFocused = input
	if input {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// runSearch cancels the request in flight and starts a new one.
func (m *searchModel) runSearch(params models.SearchParams) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	reqCtx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel

	m.seq++
	m.params = params
	m.searched = true
	m.loading = true
	m.err = nil

	seq := m.seq
	catalog := m.catalog
	return func() tea.Msg {
		defer cancel()
		result, err := catalog.Search(reqCtx, params)
		return searchDoneMsg{seq: seq, result: result, err: err}
	}
}

func (m *searchModel) cmdLoadRegions() tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	return func() tea.Msg {
		regions, err := catalog.GetRegions(ctx)
		return regionsLoadedMsg{regions: regions, err: err}
	}
}

func (m *searchModel) View() string {
	var b strings.Builder

	b.WriteString("Query:  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	region := m.region()
	if region == allRegions {
		region = "all regions"
	}
	b.WriteString("Region: " + region)
	if m.regionsErr != nil {
		b.WriteString(helpStyle.Render("  (region list unavailable)"))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Searching...")
	case m.err != nil:
		b.WriteString(errorText(m.err))
	case !m.searched:
		b.WriteString(helpStyle.Render("Type a query and press enter."))
	case len(m.result.Items) == 0:
		b.WriteString("Nothing found")
	default:
		rows := make([]string, 0, len(m.result.Items))
		for _, it := range m.result.Items {
			rows = append(rows, sakeLine(it.Name, it.Brewery, it.Region, m.favorites.IsFavorite(it.ID)))
		}
		selected := m.idx
		if m.inputFocused {
			selected = -1
		}
		b.WriteString(renderRows(rows, selected))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(pageInfo(m.result)))
	}

	hotKeys := "enter: search │ tab: region │ ↓: results │ esc: home"
	if !m.inputFocused {
		hotKeys = "enter: open │ n/p: page │ /: edit query │ tab: region │ r: retry │ esc: home"
	}
	return renderPage("SEARCH", b.String(), hotKeys)
}

func pageInfo(r models.SearchResult) string {
	pages := 1
	if r.PerPage > 0 && r.Total > 0 {
		pages = (r.Total + r.PerPage - 1) / r.PerPage
	}
	return fmt.Sprintf("page %d of %d · %d found", r.Page, pages, r.Total)
}
