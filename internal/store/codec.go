// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"math"

	"github.com/MKhiriev/washu/models"
	"github.com/goccy/go-json"
)

// storedRecord is the lenient on-disk shape. Every field is optional so that
// a malformed record can be detected instead of failing the whole decode.
type storedRecord struct {
	ID          *float64 `json:"id"`
	Name        *string  `json:"name"`
	Brewery     *string  `json:"brewery"`
	Region      *string  `json:"region"`
	ImageURL    *string  `json:"imageUrl"`
	ViewedAt    *float64 `json:"viewedAt"`
	FavoritedAt *float64 `json:"favoritedAt"`
}

func (r storedRecord) ref() (models.SakeRef, error) {
	if r.ID == nil || r.Name == nil || r.Brewery == nil || r.Region == nil {
		return models.SakeRef{}, fmt.Errorf("%w: missing identity field", ErrMalformedRecord)
	}
	if *r.ID != math.Trunc(*r.ID) {
		return models.SakeRef{}, fmt.Errorf("%w: non-integer id", ErrMalformedRecord)
	}

	ref := models.SakeRef{
		ID:      int64(*r.ID),
		Name:    *r.Name,
		Brewery: *r.Brewery,
		Region:  *r.Region,
	}
	if r.ImageURL != nil {
		ref.ImageURL = *r.ImageURL
	}
	return ref, nil
}

func decodeStoredRecord(raw []byte) (storedRecord, error) {
	var rec storedRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return storedRecord{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return rec, nil
}

func decodeRecentItem(raw []byte) (models.RecentItem, error) {
	rec, err := decodeStoredRecord(raw)
	if err != nil {
		return models.RecentItem{}, err
	}
	ref, err := rec.ref()
	if err != nil {
		return models.RecentItem{}, err
	}
	if rec.ViewedAt == nil {
		return models.RecentItem{}, fmt.Errorf("%w: missing viewedAt", ErrMalformedRecord)
	}
	return models.RecentItem{SakeRef: ref, ViewedAt: int64(*rec.ViewedAt)}, nil
}

func decodeFavoriteItem(raw []byte) (models.FavoriteItem, error) {
	rec, err := decodeStoredRecord(raw)
	if err != nil {
		return models.FavoriteItem{}, err
	}
	ref, err := rec.ref()
	if err != nil {
		return models.FavoriteItem{}, err
	}
	if rec.FavoritedAt == nil {
		return models.FavoriteItem{}, fmt.Errorf("%w: missing favoritedAt", ErrMalformedRecord)
	}
	return models.FavoriteItem{SakeRef: ref, FavoritedAt: int64(*rec.FavoritedAt)}, nil
}

// decodeArray splits an array value into its elements. ok is false when raw
// is not a JSON array.
func decodeArray(raw []byte) (elements []json.RawMessage, ok bool) {
	if err := json.Unmarshal(raw, &elements); err != nil || elements == nil {
		return nil, false
	}
	return elements, true
}

// decodeRecentList returns the valid entries of a stored recent list.
// Invalid entries are skipped; a value that is not an array yields nothing.
func decodeRecentList(raw []byte) []models.RecentItem {
	elements, ok := decodeArray(raw)
	if !ok {
		return []models.RecentItem{}
	}

	items := make([]models.RecentItem, 0, len(elements))
	for _, element := range elements {
		item, err := decodeRecentItem(element)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

// legacyFavorite is one valid element of the legacy favorites array. Raw
// keeps the element exactly as stored so migration can copy it unchanged.
type legacyFavorite struct {
	Item models.FavoriteItem
	Raw  json.RawMessage
}

// decodeFavoriteList returns the valid entries of a legacy favorites array.
// ok is false when raw is not an array, which counts as "no legacy data".
func decodeFavoriteList(raw []byte) (entries []legacyFavorite, ok bool) {
	elements, ok := decodeArray(raw)
	if !ok {
		return nil, false
	}

	entries = make([]legacyFavorite, 0, len(elements))
	for _, element := range elements {
		item, err := decodeFavoriteItem(element)
		if err != nil {
			continue
		}
		entries = append(entries, legacyFavorite{Item: item, Raw: element})
	}
	return entries, true
}

func encodeRecord(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return raw, nil
}
