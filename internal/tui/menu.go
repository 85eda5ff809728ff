// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	page  string
}

// homeModel is the start page linking to the other pages.
type homeModel struct {
	items []menuItem
	idx   int
}

func newHomeModel() *homeModel {
	return &homeModel{
		items: []menuItem{
			{title: "Search sake", page: pageSearch},
			{title: "Recently viewed", page: pageRecent},
			{title: "Favorites", page: pageFavorites},
		},
	}
}

func (m *homeModel) Init() tea.Cmd { return nil }

func (m *homeModel) Enter(context.Context, any) tea.Cmd { return nil }

func (m *homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, navigate(m.items[m.idx].page, nil)
	default:
		// 1..9 jump straight to an item
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'0') <= len(m.items) {
			m.idx = int(s[0] - '1')
			return m, navigate(m.items[m.idx].page, nil)
		}
	}

	return m, nil
}

func (m *homeModel) View() string {
	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		rows = append(rows, fmt.Sprintf("%d  %s", i+1, item.title))
	}

	var b strings.Builder
	b.WriteString("Find a sake, keep the ones you like.\n\n")
	b.WriteString(renderRows(rows, m.idx))

	return renderPage("WASHU", b.String(), "enter: open │ ↑/↓: move │ v: version │ q: quit")
}
