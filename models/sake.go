// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SakeSummary is a single search hit returned by the catalog backend.
type SakeSummary struct {
	ID      int64
	Name    string
	Brewery string
	Region  string
	Tags    []string

	// ImageURL is nil when the backend sent null or omitted the field.
	ImageURL *string
}

// SakeDetail is the full catalog entry of a single sake.
//
// Optional numeric and string fields are nil when the backend either omitted
// them or sent an explicit null; both cases mean "unknown".
type SakeDetail struct {
	ID      int64
	Name    string
	Brewery string
	Region  string
	Tags    []string

	Rice        *string
	Seimaibuai  *float64
	Nihonshudo  *float64
	Acid        *float64
	Alcohol     *float64
	TasteTags   []string
	Description *string
	ImageURL    *string
}

// Ref returns the subset of the detail that is persisted in the recent and
// favorite lists.
func (d SakeDetail) Ref() SakeRef {
	ref := SakeRef{
		ID:      d.ID,
		Name:    d.Name,
		Brewery: d.Brewery,
		Region:  d.Region,
	}
	if d.ImageURL != nil {
		ref.ImageURL = *d.ImageURL
	}
	return ref
}

// Ref returns the persisted subset of a search hit.
func (s SakeSummary) Ref() SakeRef {
	ref := SakeRef{
		ID:      s.ID,
		Name:    s.Name,
		Brewery: s.Brewery,
		Region:  s.Region,
	}
	if s.ImageURL != nil {
		ref.ImageURL = *s.ImageURL
	}
	return ref
}

// SearchParams are the user-facing search criteria. Empty Query and Region
// are not sent to the backend at all; zero Page and PerPage fall back to the
// backend defaults used by the client (1 and 20).
type SearchParams struct {
	Query   string
	Region  string
	Page    int
	PerPage int
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Items   []SakeSummary
	Page    int
	PerPage int
	Total   int
}

// HasNextPage reports whether another page exists after the current one.
func (r SearchResult) HasNextPage() bool {
	return r.PerPage > 0 && r.Page*r.PerPage < r.Total
}
