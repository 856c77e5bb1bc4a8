// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_WriteReadDelete(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore(logger.Nop())

	_, ok := kv.Read(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, kv.Write(ctx, "k", []int{1, 2}))
	raw, ok := kv.Read(ctx, "k")
	require.True(t, ok)
	assert.JSONEq(t, `[1,2]`, string(raw))

	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"))
	_, ok = kv.Read(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryKV_CorruptValueIsAbsent(t *testing.T) {
	kv := NewMemoryKeyValueStore(logger.Nop()).(*memoryKeyValueStore)
	kv.putRaw("deckIndex", "[{")

	raw, ok := kv.Read(context.Background(), "deckIndex")
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestMemoryKV_Keys(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore(logger.Nop())

	for _, key := range []string{"deck_b", "deckIndex", "deck_a", "activeDeckId"} {
		require.NoError(t, kv.Write(ctx, key, true))
	}

	keys, err := kv.Keys(ctx, "deck_")
	require.NoError(t, err)
	assert.Equal(t, []string{"deck_a", "deck_b"}, keys)

	all, err := kv.Keys(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMemoryKV_ReadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore(logger.Nop())
	require.NoError(t, kv.Write(ctx, "k", "abc"))

	raw, _ := kv.Read(ctx, "k")
	raw[1] = 'z'

	again, _ := kv.Read(ctx, "k")
	assert.Equal(t, `"abc"`, string(again))
}
