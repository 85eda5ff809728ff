// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/washu/internal/app"
	"github.com/MKhiriev/washu/internal/config"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/internal/utils"
	"github.com/MKhiriev/washu/models"
	"github.com/goccy/go-json"
)

const (
	pathSearch    = "/api/v1/sake/search"
	pathDetail    = "/api/v1/sake/{id}"
	pathRegions   = "/api/v1/meta/regions"
	pathTasteTags = "/api/v1/meta/taste-tags"
	pathHealth    = "/health"

	defaultPage    = 1
	defaultPerPage = 20
)

type httpSakeAPI struct {
	client *utils.HTTPClient
	cache  ResponseCache
	logger *logger.Logger
}

// NewHTTPSakeAPI constructs the HTTP/REST implementation of [SakeAPI].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// configured request timeout. A nil cache disables offline replay.
func NewHTTPSakeAPI(adapterCfg config.ClientAdapter, cache ResponseCache, log *logger.Logger) (SakeAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if cache == nil {
		cache = noopCache{}
	}

	api := &httpSakeAPI{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		cache:  cache,
		logger: log,
	}
	api.useMiddlewares()
	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Search implements [SakeAPI].
func (h *httpSakeAPI) Search(ctx context.Context, params models.SearchParams) (models.SearchResult, error) {
	query := url.Values{}
	if strings.TrimSpace(params.Query) != "" {
		query.Set("q", params.Query)
	}
	if strings.TrimSpace(params.Region) != "" {
		query.Set("region", params.Region)
	}
	page, perPage := params.Page, params.PerPage
	if page <= 0 {
		page = defaultPage
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var raw rawSearchResponse
	if err := h.getJSON(ctx, pathSearch, nil, query, app.MsgSearchFailed, &raw); err != nil {
		return models.SearchResult{}, fmt.Errorf("search: %w", err)
	}

	result, err := raw.toModel()
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search: %w: %w", ErrParse, err)
	}
	return result, nil
}

// GetDetail implements [SakeAPI].
func (h *httpSakeAPI) GetDetail(ctx context.Context, id int64) (models.SakeDetail, error) {
	pathParams := map[string]string{"id": strconv.FormatInt(id, 10)}

	var raw rawSakeDetail
	if err := h.getJSON(ctx, pathDetail, pathParams, nil, app.MsgDetailFailed, &raw); err != nil {
		return models.SakeDetail{}, fmt.Errorf("get detail %d: %w", id, err)
	}

	detail, err := raw.toModel()
	if err != nil {
		return models.SakeDetail{}, fmt.Errorf("get detail %d: %w: %w", id, ErrParse, err)
	}
	return detail, nil
}

// GetRegions implements [SakeAPI].
func (h *httpSakeAPI) GetRegions(ctx context.Context) ([]string, error) {
	var raw rawRegionsResponse
	if err := h.getJSON(ctx, pathRegions, nil, nil, app.MsgRegionsFailed, &raw); err != nil {
		return nil, fmt.Errorf("get regions: %w", err)
	}
	if raw.Regions == nil {
		return nil, fmt.Errorf("get regions: %w: %w", ErrParse, errMissingField)
	}
	return raw.Regions, nil
}

// GetTasteTags implements [SakeAPI].
func (h *httpSakeAPI) GetTasteTags(ctx context.Context) ([]string, error) {
	var raw rawTasteTagsResponse
	if err := h.getJSON(ctx, pathTasteTags, nil, nil, app.MsgTasteTagsFailed, &raw); err != nil {
		return nil, fmt.Errorf("get taste tags: %w", err)
	}
	if raw.Tags == nil {
		return nil, fmt.Errorf("get taste tags: %w: %w", ErrParse, errMissingField)
	}
	return raw.Tags, nil
}

// Ping implements [SakeAPI]. It never consults the response cache.
func (h *httpSakeAPI) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(pathHealth)
	if err != nil {
		return fmt.Errorf("ping: %w", mapTransportError(ctx, err))
	}
	if err = mapHTTPError(resp, app.MsgHealthFailed); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// getJSON performs a GET and decodes the body into out. On a network
// failure a previously cached body for the same URL is decoded instead.
func (h *httpSakeAPI) getJSON(
	ctx context.Context,
	path string,
	pathParams map[string]string,
	query url.Values,
	fallback string,
	out any,
) error {
	key := cacheKey(path, pathParams, query)

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetQueryParamsFromValues(query).
		Get(path)
	if err != nil {
		mapped := mapTransportError(ctx, err)
		if !errors.Is(mapped, ErrNetworkUnreachable) {
			return mapped
		}

		cached, ok := h.cache.Get(key)
		if !ok {
			return mapped
		}
		h.logger.Warn().Err(err).Str("key", key).Msg("backend unreachable, serving cached response")
		return decodeBody(cached, out)
	}

	if err = mapHTTPError(resp, fallback); err != nil {
		return err
	}

	body := resp.Body()
	if err = decodeBody(body, out); err != nil {
		return err
	}
	h.cache.Set(key, body)

	return nil
}

func decodeBody(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

func cacheKey(path string, pathParams map[string]string, query url.Values) string {
	for name, value := range pathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
