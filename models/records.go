// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaxRecentItems is the capacity of the recently viewed list.
const MaxRecentItems = 50

// SakeRef holds the fields shared by every locally persisted sake record.
// It is embedded so that the stored JSON stays flat:
//
//	{"id":1,"name":"...","brewery":"...","region":"...","imageUrl":"...","viewedAt":...}
type SakeRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Brewery  string `json:"brewery"`
	Region   string `json:"region"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// RecentItem is a sake the user has opened on the detail page.
//
// When passed to a write operation a zero ViewedAt means "not set" and is
// replaced with the current time (epoch milliseconds).
type RecentItem struct {
	SakeRef
	ViewedAt int64 `json:"viewedAt"`
}

// FavoriteItem is a sake the user has explicitly starred.
//
// When passed to a write operation a zero FavoritedAt means "not set" and is
// replaced with the current time (epoch milliseconds).
type FavoriteItem struct {
	SakeRef
	FavoritedAt int64 `json:"favoritedAt"`
}
