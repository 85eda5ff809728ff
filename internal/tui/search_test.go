// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/washu/internal/adapter"
	"github.com/MKhiriev/washu/internal/app"
	"github.com/MKhiriev/washu/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSearch(t *testing.T, ctrl *gomock.Controller) (*searchModel, *testDeps) {
	t.Helper()
	d := newTestDeps(ctrl, true)
	m := newSearchModel(d.catalog, d.favorites)
	m.Enter(context.Background(), nil)
	return m, d
}

func typeQuery(m *searchModel, q string) {
	m.Update(keyRunes(q))
}

func searchPage(page, total int, names ...string) models.SearchResult {
	items := make([]models.SakeSummary, 0, len(names))
	for i, name := range names {
		items = append(items, models.SakeSummary{ID: int64(i + 1), Name: name, Brewery: "b", Region: "r", Tags: []string{}})
	}
	return models.SearchResult{Items: items, Page: page, PerPage: 20, Total: total}
}

func applyAll(m *searchModel, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		m.Update(msg)
	}
}

func TestSearch_EnterLoadsRegions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTestDeps(ctrl, true)
	m := newSearchModel(d.catalog, d.favorites)

	d.catalog.EXPECT().GetRegions(gomock.Any()).Return([]string{"Niigata", "Yamaguchi"}, nil)
	applyAll(m, m.Enter(context.Background(), nil))

	assert.Equal(t, []string{allRegions, "Niigata", "Yamaguchi"}, m.regions)

	// known regions are not fetched again
	for _, msg := range collect(m.Enter(context.Background(), nil)) {
		_, isRegions := msg.(regionsLoadedMsg)
		assert.False(t, isRegions)
	}
}

func TestSearch_SubmitQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, d := newTestSearch(t, ctrl)
	typeQuery(m, "dassai")

	d.catalog.EXPECT().Search(gomock.Any(), models.SearchParams{Query: "dassai", Page: 1}).
		Return(searchPage(1, 2, "Dassai 23", "Dassai 45"), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Searching...")

	applyAll(m, cmd)

	assert.False(t, m.loading)
	assert.False(t, m.inputFocused)
	view := m.View()
	assert.Contains(t, view, "Dassai 23")
	assert.Contains(t, view, "page 1 of 1 · 2 found")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []tea.Msg{NavigateTo{
		Page:    pageDetail,
		Payload: openDetail{Ref: models.SakeRef{ID: 2, Name: "Dassai 45", Brewery: "b", Region: "r"}, From: pageSearch},
	}}, collect(cmd))
}

func TestSearch_StaleResultIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, d := newTestSearch(t, ctrl)

	d.catalog.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.SearchParams) (models.SearchResult, error) {
			return searchPage(1, 1, "result for "+p.Query), nil
		}).Times(2)

	typeQuery(m, "a")
	_, first := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeQuery(m, "b")
	_, second := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// the newer answer arrives first
	applyAll(m, second)
	applyAll(m, first)

	require.Len(t, m.result.Items, 1)
	assert.Equal(t, "result for ab", m.result.Items[0].Name)
}

func TestSearch_FirstRequestIsCanceledBySecond(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, d := newTestSearch(t, ctrl)

	var firstCtx context.Context
	d.catalog.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.SearchParams) (models.SearchResult, error) {
			firstCtx = ctx
			return models.SearchResult{}, nil
		})

	_, first := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	collect(first)
	assert.ErrorIs(t, firstCtx.Err(), context.Canceled)
}

func TestSearch_RegionCycling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, d := newTestSearch(t, ctrl)
	m.Update(regionsLoadedMsg{regions: []string{"Niigata", "Yamaguchi"}})

	// before any search only the selection moves
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.Equal(t, "Niigata", m.region())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Nil(t, cmd)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Nil(t, cmd)
	assert.Equal(t, "Yamaguchi", m.region())
	assert.Contains(t, m.View(), "Region: Yamaguchi")

	typeQuery(m, "junmai")
	d.catalog.EXPECT().Search(gomock.Any(), models.SearchParams{Query: "junmai", Region: "Yamaguchi", Page: 1}).
		Return(searchPage(1, 40, "x"), nil)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	applyAll(m, cmd)

	// after a search a region change searches again from page one
	d.catalog.EXPECT().Search(gomock.Any(), models.SearchParams{Query: "junmai", Region: "", Page: 1}).
		Return(searchPage(1, 1, "y"), nil)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	applyAll(m, cmd)
	assert.Contains(t, m.View(), "all regions")
}

func TestSearch_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, d := newTestSearch(t, ctrl)
	typeQuery(m, "nama")

	d.catalog.EXPECT().Search(gomock.Any(), models.SearchParams{Query: "nama", Page: 1}).Return(searchPage(1, 45, "p1"), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	applyAll(m, cmd)
	assert.Contains(t, m.View(), "page 1 of 3")

	// no previous page on the first one
	_, cmd = m.Update(keyRunes("p"))
	assert.Nil(t, cmd)

	d.catalog.EXPECT().Search(gomock.Any(), models.SearchParams{Query: "nama", Page: 2}).Return(searchPage(2, 45, "p2"), nil)
	_, cmd = m.Update(keyRunes("n"))
	applyAll(m, cmd)
	assert.Equal(t, 2, m.result.Page)

	d.catalog.EXPECT().Search(gomock.Any(), models.SearchParams{Query: "nama", Page: 3}).Return(searchPage(3, 45, "p3"), nil)
	_, cmd = m.Update(keyRunes("n"))
	applyAll(m, cmd)

	// last page
	_, cmd = m.Update(keyRunes("n"))
	assert.Nil(t, cmd)

	d.catalog.EXPECT().Search(gomock.Any(), models.SearchParams{Query: "nama", Page: 2}).Return(searchPage(2, 45, "p2"), nil)
	_, cmd = m.Update(keyRunes("p"))
	applyAll(m, cmd)
	assert.Equal(t, 2, m.result.Page)
}

func TestSearch_ErrorAndRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, d := newTestSearch(t, ctrl)
	typeQuery(m, "kubota")
	params := models.SearchParams{Query: "kubota", Page: 1}

	gomock.InOrder(
		d.catalog.EXPECT().Search(gomock.Any(), params).
			Return(models.SearchResult{}, app.Fatal(fmt.Errorf("search: %w", adapter.ErrNetworkUnreachable))),
		d.catalog.EXPECT().Search(gomock.Any(), params).Return(searchPage(1, 1, "Kubota Manju"), nil),
	)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	applyAll(m, cmd)

	view := m.View()
	assert.Contains(t, view, app.MsgNetworkUnreachable)
	assert.Contains(t, view, "r: retry")

	_, cmd = m.Update(keyRunes("r"))
	applyAll(m, cmd)

	assert.Nil(t, m.err)
	assert.Contains(t, m.View(), "Kubota Manju")
}

func TestSearch_EditQueryAndBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, d := newTestSearch(t, ctrl)

	d.catalog.EXPECT().Search(gomock.Any(), gomock.Any()).Return(searchPage(1, 1, "x"), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	applyAll(m, cmd)
	require.False(t, m.inputFocused)

	m.Update(keyRunes("/"))
	assert.True(t, m.inputFocused)

	// letters go to the query while it is focused
	m.Update(keyRunes("n"))
	assert.Equal(t, "n", m.input.Value())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []tea.Msg{NavigateTo{Page: pageHome}}, collect(cmd))
}
