// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
)

type memoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	logger *logger.Logger
}

// NewMemoryKeyValueStore returns a [KeyValueStore] that keeps serialised
// values in process memory. Values are stored as JSON text so reads behave
// exactly like the SQLite store.
func NewMemoryKeyValueStore(logger *logger.Logger) KeyValueStore {
	return &memoryKeyValueStore{
		values: make(map[string][]byte),
		logger: logger.WithComponent("kv_memory"),
	}
}

func (m *memoryKeyValueStore) Write(_ context.Context, key string, payload any) error {
	if key == "" {
		return ErrEmptyKey
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()

	return nil
}

func (m *memoryKeyValueStore) Read(_ context.Context, key string) (json.RawMessage, bool) {
	m.mu.RLock()
	value, ok := m.values[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !json.Valid(value) {
		m.logger.Warn().
			Str("func", "memoryKeyValueStore.Read").
			Str("key", key).
			Msg("stored value is not valid JSON, treating as missing")
		return nil, false
	}

	return slices.Clone(value), true
}

func (m *memoryKeyValueStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

func (m *memoryKeyValueStore) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	return keys, nil
}

// putRaw stores text verbatim. Tests use it to plant corrupt values.
func (m *memoryKeyValueStore) putRaw(key, text string) {
	m.mu.Lock()
	m.values[key] = []byte(text)
	m.mu.Unlock()
}
