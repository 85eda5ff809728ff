// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
)

type memoryRecordStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryRecordStore returns a store that lives for the process lifetime.
func NewMemoryRecordStore() RecordStore {
	return &memoryRecordStore{records: make(map[string][]byte)}
}

func (m *memoryRecordStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(value), true, nil
}

func (m *memoryRecordStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = slices.Clone(value)
	return nil
}

func (m *memoryRecordStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}

func (m *memoryRecordStore) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.records))
	for key := range m.records {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

// noopRecordStore stands in when nothing can be persisted: reads are empty
// and writes are discarded.
type noopRecordStore struct{}

// NewNoopRecordStore returns a store that keeps nothing.
func NewNoopRecordStore() RecordStore {
	return noopRecordStore{}
}

func (noopRecordStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (noopRecordStore) Set(context.Context, string, []byte) error          { return nil }
func (noopRecordStore) Remove(context.Context, string) error               { return nil }
func (noopRecordStore) Keys(context.Context) ([]string, error)             { return []string{}, nil }
