// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/mock"
	"github.com/MKhiriev/go-deck-keeper/internal/store"
	"github.com/MKhiriev/go-deck-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientPreferenceService_DefaultsToLocal(t *testing.T) {
	storages := store.NewInMemoryClientStorages(t.TempDir(), logger.Nop())
	prefs := NewClientPreferenceService(storages, logger.Nop())

	assert.Equal(t, models.StorageLocal, prefs.StorageType())
	assert.Empty(t, prefs.FileName())
}

func TestClientPreferenceService_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	storages := store.NewInMemoryClientStorages(t.TempDir(), logger.Nop())
	prefs := NewClientPreferenceService(storages, logger.Nop())

	require.NoError(t, prefs.SetStorageType(ctx, models.StorageRemote))
	require.NoError(t, prefs.SetFileName(ctx, " notes "))

	// a fresh session state over the same key-value store sees the choice
	reloaded := store.NewSessionState(storages.KeyValueStore, logger.Nop())
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, models.StorageRemote, reloaded.StorageType())
	assert.Equal(t, "notes", reloaded.FileName())
}

func TestClientPreferenceService_SetStorageType_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the session must not be touched
	session := mock.NewMockSessionState(ctrl)
	prefs := NewClientPreferenceService(&store.ClientStorages{Session: session}, logger.Nop())

	err := prefs.SetStorageType(context.Background(), models.StorageType("dropbox"))
	require.ErrorIs(t, err, models.ErrUnknownStorageType)
}

func TestClientPreferenceService_SetStorageType_PersistError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mock.NewMockSessionState(ctrl)
	prefs := NewClientPreferenceService(&store.ClientStorages{Session: session}, logger.Nop())

	session.EXPECT().SetStorageType(gomock.Any(), models.StorageFile).Return(errors.New("disk"))

	err := prefs.SetStorageType(context.Background(), models.StorageFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set storage type")
}

func TestClientPreferenceService_TargetName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		deckName string
		want     string
	}{
		{name: "deck name", deckName: "My  Spanish\tDeck", want: "My_Spanish_Deck.json"},
		{name: "dotted deck name", deckName: "Chapter 1.5", want: "Chapter_1.5.json"},
		{name: "stored file name wins", fileName: "backup", deckName: "My Deck", want: "backup.json"},
		{name: "stored file name extension replaced", fileName: "backup.txt", deckName: "My Deck", want: "backup.json"},
		{name: "blank deck name", deckName: "  ", want: "deck.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			session := mock.NewMockSessionState(ctrl)
			session.EXPECT().FileName().Return(tt.fileName)
			prefs := NewClientPreferenceService(&store.ClientStorages{Session: session}, logger.Nop())

			assert.Equal(t, tt.want, prefs.TargetName(models.Deck{Name: tt.deckName}))
		})
	}
}
