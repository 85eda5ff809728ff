// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/washu/internal/adapter"
	"github.com/MKhiriev/washu/internal/analytics"
	"github.com/MKhiriev/washu/internal/app"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/models"
)

type catalogService struct {
	api     adapter.SakeAPI
	tracker analytics.Tracker
	logger  *logger.Logger
}

func NewCatalogService(api adapter.SakeAPI, tracker analytics.Tracker, log *logger.Logger) CatalogService {
	return &catalogService{api: api, tracker: tracker, logger: log}
}

func (c *catalogService) Search(ctx context.Context, params models.SearchParams) (models.SearchResult, error) {
	c.tracker.Track(analytics.EventSearchExec, analytics.Params{
		"q":      params.Query,
		"region": params.Region,
		"page":   params.Page,
	})

	result, err := c.api.Search(ctx, params)
	if err != nil {
		return models.SearchResult{}, c.fail("search", err)
	}
	return result, nil
}

func (c *catalogService) GetDetail(ctx context.Context, id int64) (models.SakeDetail, error) {
	detail, err := c.api.GetDetail(ctx, id)
	if err != nil {
		return models.SakeDetail{}, c.fail("detail", err)
	}

	c.tracker.Track(analytics.EventDetailView, analytics.Params{"id": id, "name": detail.Name})
	return detail, nil
}

func (c *catalogService) GetRegions(ctx context.Context) ([]string, error) {
	regions, err := c.api.GetRegions(ctx)
	if err != nil {
		return nil, c.fail("regions", err)
	}
	return regions, nil
}

func (c *catalogService) GetTasteTags(ctx context.Context) ([]string, error) {
	tags, err := c.api.GetTasteTags(ctx)
	if err != nil {
		return nil, c.fail("taste_tags", err)
	}
	return tags, nil
}

// fail tags err as fatal. Abandoned requests are not reported.
func (c *catalogService) fail(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return app.Fatal(err)
	}

	c.logger.Warn().Err(err).Str("op", op).Msg("catalog request failed")
	c.tracker.Track(analytics.EventError, analytics.Params{"op": op, "message": UserMessage(err)})
	return app.Fatal(err)
}
