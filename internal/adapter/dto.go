// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"strings"

	"github.com/MKhiriev/washu/models"
)

// Wire shapes. Required fields are pointers so that a missing or null value
// can be told apart from a zero value.

type rawSakeSummary struct {
	ID       *int64   `json:"id"`
	Name     *string  `json:"name"`
	Brewery  *string  `json:"brewery"`
	Region   *string  `json:"region"`
	Tags     []string `json:"tags"`
	ImageURL *string  `json:"image_url"`
}

type rawSakeDetail struct {
	ID          *int64   `json:"id"`
	Name        *string  `json:"name"`
	Brewery     *string  `json:"brewery"`
	Region      *string  `json:"region"`
	Tags        []string `json:"tags"`
	Rice        *string  `json:"rice"`
	Seimaibuai  *float64 `json:"seimaibuai"`
	Nihonshudo  *float64 `json:"nihonshudo"`
	Acid        *float64 `json:"acid"`
	Alcohol     *float64 `json:"alcohol"`
	TasteTags   []string `json:"taste_tags"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

type rawSearchResponse struct {
	Items   []rawSakeSummary `json:"items"`
	Page    *int             `json:"page"`
	PerPage *int             `json:"per_page"`
	Total   *int             `json:"total"`
}

type rawRegionsResponse struct {
	Regions []string `json:"regions"`
}

type rawTasteTagsResponse struct {
	Tags []string `json:"tags"`
}

var (
	errMissingField  = errors.New("missing required field")
	errEmptyImageURL = errors.New("image_url is empty")
)

func requireIdentity(id *int64, name, brewery, region *string) error {
	if id == nil || name == nil || brewery == nil || region == nil {
		return errMissingField
	}
	return nil
}

// normalizeImageURL trims the value; a present but blank URL is invalid.
func normalizeImageURL(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, errEmptyImageURL
	}
	return &trimmed, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func (r rawSakeSummary) toModel() (models.SakeSummary, error) {
	if err := requireIdentity(r.ID, r.Name, r.Brewery, r.Region); err != nil {
		return models.SakeSummary{}, err
	}
	imageURL, err := normalizeImageURL(r.ImageURL)
	if err != nil {
		return models.SakeSummary{}, err
	}

	return models.SakeSummary{
		ID:       *r.ID,
		Name:     *r.Name,
		Brewery:  *r.Brewery,
		Region:   *r.Region,
		Tags:     nonNilTags(r.Tags),
		ImageURL: imageURL,
	}, nil
}

func (r rawSakeDetail) toModel() (models.SakeDetail, error) {
	if err := requireIdentity(r.ID, r.Name, r.Brewery, r.Region); err != nil {
		return models.SakeDetail{}, err
	}
	imageURL, err := normalizeImageURL(r.ImageURL)
	if err != nil {
		return models.SakeDetail{}, err
	}

	return models.SakeDetail{
		ID:          *r.ID,
		Name:        *r.Name,
		Brewery:     *r.Brewery,
		Region:      *r.Region,
		Tags:        nonNilTags(r.Tags),
		Rice:        r.Rice,
		Seimaibuai:  r.Seimaibuai,
		Nihonshudo:  r.Nihonshudo,
		Acid:        r.Acid,
		Alcohol:     r.Alcohol,
		TasteTags:   nonNilTags(r.TasteTags),
		Description: r.Description,
		ImageURL:    imageURL,
	}, nil
}

func (r rawSearchResponse) toModel() (models.SearchResult, error) {
	if r.Items == nil || r.Page == nil || r.PerPage == nil || r.Total == nil {
		return models.SearchResult{}, errMissingField
	}

	items := make([]models.SakeSummary, 0, len(r.Items))
	for _, raw := range r.Items {
		item, err := raw.toModel()
		if err != nil {
			return models.SearchResult{}, err
		}
		items = append(items, item)
	}

	return models.SearchResult{
		Items:   items,
		Page:    *r.Page,
		PerPage: *r.PerPage,
		Total:   *r.Total,
	}, nil
}
