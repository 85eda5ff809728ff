// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/washu/internal/app"
	"github.com/MKhiriev/washu/internal/config"
	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, serverURL string, cache ResponseCache) *httpSakeAPI {
	t.Helper()
	api, err := NewHTTPSakeAPI(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, cache, logger.Nop())
	require.NoError(t, err)
	return api.(*httpSakeAPI)
}

func jsonHandler(t *testing.T, status int, body string, check func(r *http.Request)) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// ── Search ──────────────────────────────────────────────────────────────────

func TestSearch_SendsParamsAndMapsResponse(t *testing.T) {
	body := `{"items":[
		{"id":1,"name":"Dassai","brewery":"Asahi","region":"Yamaguchi","tags":["dry"],"image_url":"  https://img/1.png  "},
		{"id":2,"name":"Kubota","brewery":"Asahi","region":"Niigata","tags":null,"image_url":null},
		{"id":3,"name":"Hakkaisan","brewery":"Hakkaisan","region":"Niigata"}
	],"page":2,"per_page":3,"total":7}`

	srv := httptest.NewServer(jsonHandler(t, http.StatusOK, body, func(r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/sake/search", r.URL.Path)
		assert.Equal(t, "dassai", r.URL.Query().Get("q"))
		assert.Equal(t, "Yamaguchi", r.URL.Query().Get("region"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "3", r.URL.Query().Get("per_page"))
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, nil)
	got, err := a.Search(context.Background(), models.SearchParams{Query: "dassai", Region: "Yamaguchi", Page: 2, PerPage: 3})

	require.NoError(t, err)
	require.Len(t, got.Items, 3)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 3, got.PerPage)
	assert.Equal(t, 7, got.Total)

	require.NotNil(t, got.Items[0].ImageURL)
	assert.Equal(t, "https://img/1.png", *got.Items[0].ImageURL)
	assert.Equal(t, []string{"dry"}, got.Items[0].Tags)

	assert.Nil(t, got.Items[1].ImageURL)
	assert.Equal(t, []string{}, got.Items[1].Tags)
	assert.Nil(t, got.Items[2].ImageURL)
}

func TestSearch_OmitsEmptyFiltersAndAppliesDefaults(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.StatusOK, `{"items":[],"page":1,"per_page":20,"total":0}`, func(r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("q"))
		assert.False(t, q.Has("region"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "20", q.Get("per_page"))
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, nil)
	got, err := a.Search(context.Background(), models.SearchParams{})

	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestSearch_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "blank image url", body: `{"items":[{"id":1,"name":"a","brewery":"b","region":"c","image_url":"   "}],"page":1,"per_page":20,"total":1}`},
		{name: "missing name", body: `{"items":[{"id":1,"brewery":"b","region":"c"}],"page":1,"per_page":20,"total":1}`},
		{name: "missing total", body: `{"items":[],"page":1,"per_page":20}`},
		{name: "null items", body: `{"items":null,"page":1,"per_page":20,"total":0}`},
		{name: "wrong type", body: `{"items":[{"id":"1","name":"a","brewery":"b","region":"c"}],"page":1,"per_page":20,"total":1}`},
		{name: "not json", body: `<html>oops</html>`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(jsonHandler(t, http.StatusOK, tt.body, nil))
			defer srv.Close()

			_, err := newTestAPI(t, srv.URL, nil).Search(context.Background(), models.SearchParams{})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.NotErrorIs(t, err, ErrNetworkUnreachable)
		})
	}
}

// ── GetDetail ───────────────────────────────────────────────────────────────

func TestGetDetail_NullAndAbsentNormaliseToNil(t *testing.T) {
	body := `{"id":42,"name":"Juyondai","brewery":"Takagi","region":"Yamagata",
		"rice":null,"seimaibuai":35,"acid":null,"taste_tags":["fruity"],"description":null}`

	srv := httptest.NewServer(jsonHandler(t, http.StatusOK, body, func(r *http.Request) {
		assert.Equal(t, "/api/v1/sake/42", r.URL.Path)
	}))
	defer srv.Close()

	got, err := newTestAPI(t, srv.URL, nil).GetDetail(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Nil(t, got.Rice)
	require.NotNil(t, got.Seimaibuai)
	assert.InDelta(t, 35.0, *got.Seimaibuai, 0.001)
	assert.Nil(t, got.Nihonshudo)
	assert.Nil(t, got.Acid)
	assert.Nil(t, got.Alcohol)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.ImageURL)
	assert.Equal(t, []string{"fruity"}, got.TasteTags)
	assert.Equal(t, []string{}, got.Tags)
}

func TestGetDetail_MissingRequiredField(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.StatusOK, `{"id":42,"name":null,"brewery":"b","region":"r"}`, nil))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL, nil).GetDetail(context.Background(), 42)

	assert.ErrorIs(t, err, ErrParse)
}

// ── HTTP errors ─────────────────────────────────────────────────────────────

func TestGetDetail_HTTPErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		fromServer bool
	}{
		{name: "string detail", status: http.StatusNotFound, body: `{"detail":"Sake not found"}`, wantDetail: "Sake not found", fromServer: true},
		{name: "nested message", status: http.StatusUnprocessableEntity, body: `{"detail":{"message":"bad id"}}`, wantDetail: "bad id", fromServer: true},
		{name: "list detail", status: http.StatusUnprocessableEntity, body: `{"detail":[{"msg":"x"}]}`, wantDetail: app.MsgDetailFailed},
		{name: "no body", status: http.StatusInternalServerError, body: ``, wantDetail: app.MsgDetailFailed},
		{name: "html body", status: http.StatusBadGateway, body: `<h1>bad gateway</h1>`, wantDetail: app.MsgDetailFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(jsonHandler(t, tt.status, tt.body, nil))
			defer srv.Close()

			_, err := newTestAPI(t, srv.URL, nil).GetDetail(context.Background(), 1)

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.wantDetail, httpErr.Detail)
			assert.Equal(t, tt.fromServer, httpErr.FromServer)
			assert.NotErrorIs(t, err, ErrParse)
		})
	}
}

// ── Transport errors ────────────────────────────────────────────────────────

func TestSearch_NetworkUnreachable(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.StatusOK, `{}`, nil))
	url := srv.URL
	srv.Close()

	_, err := newTestAPI(t, url, nil).Search(context.Background(), models.SearchParams{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkUnreachable)
}

func TestSearch_CancelledIsNotNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.StatusOK, `{"items":[],"page":1,"per_page":20,"total":0}`, nil))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAPI(t, srv.URL, nil).Search(ctx, models.SearchParams{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNetworkUnreachable)
}

// ── Offline replay ──────────────────────────────────────────────────────────

func TestGetRegions_ServesCachedBodyWhenUnreachable(t *testing.T) {
	cache := NewResponseCache(config.ClientCache{Enabled: true, SizeMB: 1, TTL: time.Hour}, logger.Nop())

	srv := httptest.NewServer(jsonHandler(t, http.StatusOK, `{"regions":["Niigata","Hyogo"]}`, nil))
	a := newTestAPI(t, srv.URL, cache)

	first, err := a.GetRegions(context.Background())
	require.NoError(t, err)

	srv.Close()

	second, err := a.GetRegions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetRegions_HTTPErrorNeverServedFromCache(t *testing.T) {
	cache := NewResponseCache(config.ClientCache{Enabled: true, SizeMB: 1, TTL: time.Hour}, logger.Nop())
	cache.Set("/api/v1/meta/regions", []byte(`{"regions":["Stale"]}`))

	srv := httptest.NewServer(jsonHandler(t, http.StatusServiceUnavailable, `{"detail":"maintenance"}`, nil))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL, cache).GetRegions(context.Background())

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "maintenance", httpErr.Detail)
}

// ── Meta endpoints ──────────────────────────────────────────────────────────

func TestGetRegions_MissingArray(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.StatusOK, `{}`, nil))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL, nil).GetRegions(context.Background())

	assert.ErrorIs(t, err, ErrParse)
}

func TestGetTasteTags_Success(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.StatusOK, `{"tags":["dry","sweet"]}`, func(r *http.Request) {
		assert.Equal(t, "/api/v1/meta/taste-tags", r.URL.Path)
	}))
	defer srv.Close()

	got, err := newTestAPI(t, srv.URL, nil).GetTasteTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"dry", "sweet"}, got)
}

func TestPing(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv := httptest.NewServer(jsonHandler(t, http.StatusOK, `{"status":"ok"}`, func(r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
		}))
		defer srv.Close()

		assert.NoError(t, newTestAPI(t, srv.URL, nil).Ping(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		srv := httptest.NewServer(jsonHandler(t, http.StatusServiceUnavailable, ``, nil))
		defer srv.Close()

		var httpErr *HTTPError
		assert.ErrorAs(t, newTestAPI(t, srv.URL, nil).Ping(context.Background()), &httpErr)
	})

	t.Run("down", func(t *testing.T) {
		srv := httptest.NewServer(jsonHandler(t, http.StatusOK, ``, nil))
		url := srv.URL
		srv.Close()

		assert.ErrorIs(t, newTestAPI(t, url, nil).Ping(context.Background()), ErrNetworkUnreachable)
	})
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8000", want: "http://localhost:8000"},
		{raw: " https://api.example.com/ ", want: "https://api.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPSakeAPI_InvalidAddress(t *testing.T) {
	_, err := NewHTTPSakeAPI(config.ClientAdapter{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
