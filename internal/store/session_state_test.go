// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionState_Defaults(t *testing.T) {
	s := NewSessionState(NewMemoryKeyValueStore(logger.Nop()), logger.Nop())
	require.NoError(t, s.Load(context.Background()))

	_, ok := s.ActiveDeckID()
	assert.False(t, ok)
	assert.Equal(t, models.StorageLocal, s.StorageType())
	assert.Empty(t, s.FileName())
}

func TestSessionState_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore(logger.Nop())

	s := NewSessionState(kv, logger.Nop())
	require.NoError(t, s.SetActiveDeckID(ctx, "deck-1"))
	require.NoError(t, s.SetStorageType(ctx, models.StorageFile))
	require.NoError(t, s.SetFileName(ctx, "  backup.json "))

	reloaded := NewSessionState(kv, logger.Nop())
	require.NoError(t, reloaded.Load(ctx))

	id, ok := reloaded.ActiveDeckID()
	assert.True(t, ok)
	assert.Equal(t, "deck-1", id)
	assert.Equal(t, models.StorageFile, reloaded.StorageType())
	assert.Equal(t, "backup.json", reloaded.FileName())

	// persisted under the well-known keys
	raw, ok := kv.Read(ctx, "storagePreference")
	require.True(t, ok)
	assert.JSONEq(t, `"file"`, string(raw))
}

func TestSessionState_ClearPointers(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore(logger.Nop())
	s := NewSessionState(kv, logger.Nop())

	require.NoError(t, s.SetActiveDeckID(ctx, "deck-1"))
	require.NoError(t, s.ClearActiveDeckID(ctx))
	_, ok := s.ActiveDeckID()
	assert.False(t, ok)

	require.NoError(t, s.SetFileName(ctx, "x"))
	require.NoError(t, s.SetFileName(ctx, ""))
	assert.Empty(t, s.FileName())

	keys, err := kv.Keys(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSessionState_UnknownPreferenceFallsBackToLocal(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore(logger.Nop())
	require.NoError(t, kv.Write(ctx, "storagePreference", "dropbox"))
	require.NoError(t, kv.Write(ctx, "activeDeckId", 42))

	s := NewSessionState(kv, logger.Nop())
	require.NoError(t, s.Load(ctx))

	assert.Equal(t, models.StorageLocal, s.StorageType())
	_, ok := s.ActiveDeckID()
	assert.False(t, ok)
}

func TestSessionState_SetStorageType_Rejected(t *testing.T) {
	s := NewSessionState(NewMemoryKeyValueStore(logger.Nop()), logger.Nop())

	err := s.SetStorageType(context.Background(), models.StorageType("ftp"))
	require.ErrorIs(t, err, models.ErrUnknownStorageType)
	assert.Equal(t, models.StorageLocal, s.StorageType())
}
