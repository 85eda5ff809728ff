// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSakeDetail_Ref(t *testing.T) {
	img := "https://img.example/1.png"
	d := SakeDetail{ID: 7, Name: "Dassai", Brewery: "Asahi", Region: "Yamaguchi", ImageURL: &img}

	ref := d.Ref()

	assert.Equal(t, SakeRef{ID: 7, Name: "Dassai", Brewery: "Asahi", Region: "Yamaguchi", ImageURL: img}, ref)
}

func TestSakeSummary_Ref_NoImage(t *testing.T) {
	s := SakeSummary{ID: 1, Name: "A", Brewery: "B", Region: "C"}
	assert.Empty(t, s.Ref().ImageURL)
}

func TestSearchResult_HasNextPage(t *testing.T) {
	tests := []struct {
		name string
		res  SearchResult
		want bool
	}{
		{name: "more pages", res: SearchResult{Page: 1, PerPage: 20, Total: 41}, want: true},
		{name: "exact last page", res: SearchResult{Page: 2, PerPage: 20, Total: 40}, want: false},
		{name: "empty", res: SearchResult{Page: 1, PerPage: 20, Total: 0}, want: false},
		{name: "zero per page", res: SearchResult{Page: 1, Total: 10}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.HasNextPage())
		})
	}
}

// The persisted layout is flat; embedded SakeRef must not introduce nesting.
func TestFavoriteItem_FlatJSON(t *testing.T) {
	item := FavoriteItem{SakeRef: SakeRef{ID: 1, Name: "A", Brewery: "B", Region: "C"}, FavoritedAt: 42}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"name":"A","brewery":"B","region":"C","favoritedAt":42}`, string(raw))
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "2026-01-01", info.Date)
	assert.Equal(t, "N/A", info.Commit)
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
