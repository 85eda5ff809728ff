// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/washu/internal/logger"
	"github.com/MKhiriev/washu/internal/mock"
	"github.com/MKhiriev/washu/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func recentDraft(id int64, viewedAt int64) models.RecentItem {
	return models.RecentItem{
		SakeRef: models.SakeRef{
			ID:      id,
			Name:    fmt.Sprintf("sake-%d", id),
			Brewery: "brewery",
			Region:  "region",
		},
		ViewedAt: viewedAt,
	}
}

func newTestRecentRepo(s RecordStore) *recentRepository {
	return NewRecentRepository(s, logger.Nop()).(*recentRepository)
}

func TestRecentRepository_CapacityKeepsNewest(t *testing.T) {
	ctx := context.Background()
	repo := newTestRecentRepo(NewMemoryRecordStore())

	for i := int64(1); i <= 55; i++ {
		require.NoError(t, repo.AddRecent(ctx, recentDraft(i, 1000+i)))
	}

	items, err := repo.ListRecent(ctx, models.MaxRecentItems)
	require.NoError(t, err)
	require.Len(t, items, models.MaxRecentItems)

	for i, item := range items {
		assert.Equal(t, int64(55-i), item.ID)
		if i > 0 {
			assert.Greater(t, items[i-1].ViewedAt, item.ViewedAt)
		}
	}
}

func TestRecentRepository_Deduplicates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRecentRepo(NewMemoryRecordStore())

	require.NoError(t, repo.AddRecent(ctx, recentDraft(1, 100)))
	require.NoError(t, repo.AddRecent(ctx, recentDraft(2, 200)))
	require.NoError(t, repo.AddRecent(ctx, recentDraft(1, 300)))

	items, err := repo.ListRecent(ctx, models.MaxRecentItems)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(300), items[0].ViewedAt)
	assert.Equal(t, int64(2), items[1].ID)
}

func TestRecentRepository_StampsViewedAt(t *testing.T) {
	ctx := context.Background()
	repo := newTestRecentRepo(NewMemoryRecordStore())
	repo.now = func() time.Time { return time.UnixMilli(4242) }

	require.NoError(t, repo.AddRecent(ctx, recentDraft(1, 0)))

	items, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(4242), items[0].ViewedAt)
}

func TestRecentRepository_ListLimit(t *testing.T) {
	ctx := context.Background()
	repo := newTestRecentRepo(NewMemoryRecordStore())
	for i := int64(1); i <= 5; i++ {
		require.NoError(t, repo.AddRecent(ctx, recentDraft(i, i)))
	}

	items, err := repo.ListRecent(ctx, 3)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(5), items[0].ID)
}

func TestRecentRepository_ListLimitBounds(t *testing.T) {
	ctx := context.Background()
	repo := newTestRecentRepo(NewMemoryRecordStore())
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, repo.AddRecent(ctx, recentDraft(i, i)))
	}

	items, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = repo.ListRecent(ctx, -1)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestRecentRepository_SkipsMalformedEntries(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryRecordStore()
	require.NoError(t, s.Set(ctx, recentListKey, []byte(`[
		{"id":1,"name":"a","brewery":"b","region":"c","viewedAt":10},
		{"id":2,"brewery":"b","region":"c","viewedAt":20}
	]`)))
	repo := newTestRecentRepo(s)

	items, err := repo.ListRecent(ctx, models.MaxRecentItems)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
}

func TestRecentRepository_NotAnArrayIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryRecordStore()
	require.NoError(t, s.Set(ctx, recentListKey, []byte(`{"oops":true}`)))

	items, err := newTestRecentRepo(s).ListRecent(ctx, models.MaxRecentItems)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecentRepository_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStore := mock.NewMockRecordStore(ctrl)
	repo := newTestRecentRepo(mockStore)

	t.Run("read fails", func(t *testing.T) {
		mockStore.EXPECT().Get(ctx, recentListKey).Return(nil, false, ErrStorageUnavailable)

		_, err := repo.ListRecent(ctx, models.MaxRecentItems)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("write fails", func(t *testing.T) {
		gomock.InOrder(
			mockStore.EXPECT().Get(ctx, recentListKey).Return(nil, false, nil),
			mockStore.EXPECT().Set(ctx, recentListKey, gomock.Any()).Return(errors.New("quota exceeded")),
		)

		err := repo.AddRecent(ctx, recentDraft(1, 1))
		assert.ErrorContains(t, err, "quota exceeded")
	})
}

func TestRecentRepository_ConcurrentAddsAreSerialised(t *testing.T) {
	ctx := context.Background()
	repo := newTestRecentRepo(NewMemoryRecordStore())

	done := make(chan struct{})
	for i := int64(1); i <= 20; i++ {
		go func(id int64) {
			defer func() { done <- struct{}{} }()
			_ = repo.AddRecent(ctx, recentDraft(id, id))
		}(i)
	}
	for range 20 {
		<-done
	}

	items, err := repo.ListRecent(ctx, models.MaxRecentItems)
	require.NoError(t, err)
	assert.Len(t, items, 20)
}
