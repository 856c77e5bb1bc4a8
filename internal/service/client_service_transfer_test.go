// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-deck-keeper/internal/adapter"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/mock"
	"github.com/MKhiriev/go-deck-keeper/internal/store"
	"github.com/MKhiriev/go-deck-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type transferFixture struct {
	svc      ClientTransferService
	prefs    ClientPreferenceService
	storages *store.ClientStorages
	remote   *mock.MockRemoteStore
	dir      string
}

func newTransferFixture(t *testing.T, ctrl *gomock.Controller) transferFixture {
	t.Helper()
	dir := t.TempDir()
	storages := store.NewInMemoryClientStorages(dir, logger.Nop())
	remote := mock.NewMockRemoteStore(ctrl)
	prefs := NewClientPreferenceService(storages, logger.Nop())

	return transferFixture{
		svc:      NewClientTransferService(storages, remote, prefs, logger.Nop()),
		prefs:    prefs,
		storages: storages,
		remote:   remote,
		dir:      dir,
	}
}

// ── ImportFromJSON ───────────────────────────────────────────────────────────

func TestClientTransferService_ImportFromJSON_CardList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()

	deck, err := f.svc.ImportFromJSON(ctx, []byte(`[["hola","hello"],["adiós","bye"]]`), " spanish ")
	require.NoError(t, err)

	assert.NotEmpty(t, deck.ID)
	assert.Equal(t, "spanish", deck.Name)
	assert.Equal(t, []models.Flashcard{{Front: "hola", Back: "hello"}, {Front: "adiós", Back: "bye"}}, deck.Cards)
	assert.Equal(t, deck.CreatedAt, deck.UpdatedAt)

	stored, ok := f.storages.DeckRepository.GetDeck(ctx, deck.ID)
	require.True(t, ok)
	assert.Equal(t, deck, stored)
}

func TestClientTransferService_ImportFromJSON_QuizExample(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()

	deck, err := f.svc.ImportFromJSON(ctx, []byte(`[["a","b"],["c","d"]]`), "Quiz")
	require.NoError(t, err)

	got, ok := f.storages.DeckRepository.GetDeck(ctx, deck.ID)
	require.True(t, ok)
	assert.Equal(t, "Quiz", got.Name)
	assert.Equal(t, []models.Flashcard{{Front: "a", Back: "b"}, {Front: "c", Back: "d"}}, got.Cards)
}

func TestClientTransferService_ImportFromJSON_CardListDefaultName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)

	deck, err := f.svc.ImportFromJSON(context.Background(), []byte(`[["a","b"]]`), "")
	require.NoError(t, err)
	assert.Equal(t, importedDeckName, deck.Name)
}

func TestClientTransferService_ImportFromJSON_FullDeckOverwrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()

	existing, err := f.storages.DeckRepository.CreateDeck(ctx, "old name", "", nil)
	require.NoError(t, err)

	doc := models.Deck{
		ID:        existing.ID,
		Name:      "new name",
		CreatedAt: existing.CreatedAt,
		UpdatedAt: existing.UpdatedAt,
		Cards:     []models.Flashcard{{Front: "q", Back: "a"}},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	got, err := f.svc.ImportFromJSON(ctx, raw, "ignored")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "new name", got.Name)

	index := f.storages.DeckRepository.ListDecks(ctx)
	require.Len(t, index, 1)
	assert.Equal(t, "new name", index[0].Name)
	assert.Equal(t, 1, index[0].CardCount)
}

func TestClientTransferService_ImportFromJSON_RejectsWithoutWriting(t *testing.T) {
	inputs := map[string]string{
		"object without cards": `{"id":"x","name":"y"}`,
		"number":               `42`,
		"list of strings":      `["a","b"]`,
		"pair too long":        `[["a","b","c"]]`,
		"blank pair":           `[["a","b"],["",""]]`,
		"not json":             `{{`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newTransferFixture(t, ctrl)
			ctx := context.Background()

			_, err := f.svc.ImportFromJSON(ctx, []byte(input), "deck")
			require.Error(t, err)
			assert.Empty(t, f.storages.DeckRepository.ListDecks(ctx))

			keys, err := f.storages.KeyValueStore.Keys(ctx, "")
			require.NoError(t, err)
			assert.Empty(t, keys)
		})
	}
}

func TestClientTransferService_ImportFromFile_UsesBaseName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)

	path := filepath.Join(t.TempDir(), "french_words.json")
	require.NoError(t, os.WriteFile(path, []byte(`[["chat","cat"]]`), 0o644))

	deck, err := f.svc.ImportFromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "french_words", deck.Name)
}

func TestClientTransferService_ImportFromFile_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)

	_, err := f.svc.ImportFromFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

// ── ImportFromRemote ─────────────────────────────────────────────────────────

func TestClientTransferService_ImportFromRemote(t *testing.T) {
	t.Run("no credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTransferFixture(t, ctrl)

		f.remote.EXPECT().HasCredential().Return(false)

		_, err := f.svc.ImportFromRemote(context.Background(), "deck")
		require.ErrorIs(t, err, adapter.ErrNoCredential)
	})

	t.Run("absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTransferFixture(t, ctrl)

		f.remote.EXPECT().HasCredential().Return(true)
		f.remote.EXPECT().Read(gomock.Any(), "deck").Return(nil, false)

		_, err := f.svc.ImportFromRemote(context.Background(), "deck")
		require.ErrorIs(t, err, ErrRemoteDeckNotFound)
	})

	t.Run("card list named after object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTransferFixture(t, ctrl)

		f.remote.EXPECT().HasCredential().Return(true)
		f.remote.EXPECT().Read(gomock.Any(), "Biology.json").Return(json.RawMessage(`[["cell","unit of life"]]`), true)

		deck, err := f.svc.ImportFromRemote(context.Background(), "Biology.json")
		require.NoError(t, err)
		assert.Equal(t, "Biology", deck.Name)
		assert.Len(t, deck.Cards, 1)
	})
}

// ── ExportDeck ───────────────────────────────────────────────────────────────

func TestClientTransferService_ExportDeck_Local(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()

	deck, err := f.storages.DeckRepository.CreateDeck(ctx, "local deck", "", nil)
	require.NoError(t, err)

	location, err := f.svc.ExportDeck(ctx, deck)
	require.NoError(t, err)
	assert.Equal(t, localLocation, location)

	_, ok := f.storages.DeckRepository.GetDeck(ctx, deck.ID)
	assert.True(t, ok)
}

func TestClientTransferService_ExportDeck_FileRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()

	require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageFile))

	deck, err := f.storages.DeckRepository.CreateDeck(ctx, "Round  Trip deck", "desc",
		[]models.Flashcard{{Front: "a", Back: "1"}, {Front: "b", Back: ""}})
	require.NoError(t, err)

	location, err := f.svc.ExportDeck(ctx, deck)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.dir, "Round_Trip_deck.json"), location)

	raw, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"id\"", "file export is pretty printed")

	// a second process imports what the first exported
	other := newTransferFixture(t, ctrl)
	imported, err := other.svc.ImportFromFile(ctx, location)
	require.NoError(t, err)

	assert.Equal(t, deck.ID, imported.ID)
	assert.Equal(t, deck.Name, imported.Name)
	assert.Equal(t, deck.Description, imported.Description)
	assert.Equal(t, deck.Cards, imported.Cards)
	assert.True(t, deck.CreatedAt.Equal(imported.CreatedAt))
}

func TestClientTransferService_ExportDeck_FileUsesPreferredName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()

	require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageFile))
	require.NoError(t, f.prefs.SetFileName(ctx, "backup.txt"))

	location, err := f.svc.ExportDeck(ctx, testDeck("d1", "whatever"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.dir, "backup.json"), location)
}

func TestClientTransferService_ExportDeck_Remote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()

	require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageRemote))
	deck := testDeck("d1", "My Spanish Deck")

	f.remote.EXPECT().HasCredential().Return(true)
	f.remote.EXPECT().Write(gomock.Any(), "My_Spanish_Deck.json", deck).Return(nil)

	location, err := f.svc.ExportDeck(ctx, deck)
	require.NoError(t, err)
	assert.Equal(t, "My_Spanish_Deck.json", location)
}

func TestClientTransferService_ExportDeck_RemoteFailures(t *testing.T) {
	t.Run("no credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTransferFixture(t, ctrl)
		ctx := context.Background()
		require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageRemote))

		f.remote.EXPECT().HasCredential().Return(false)

		_, err := f.svc.ExportDeck(ctx, testDeck("d1", "x"))
		require.ErrorIs(t, err, adapter.ErrNoCredential)
	})

	t.Run("write fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTransferFixture(t, ctrl)
		ctx := context.Background()
		require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageRemote))

		f.remote.EXPECT().HasCredential().Return(true)
		f.remote.EXPECT().Write(gomock.Any(), "x.json", gomock.Any()).Return(adapter.ErrRenameFailed)

		_, err := f.svc.ExportDeck(ctx, testDeck("d1", "x"))
		require.ErrorIs(t, err, adapter.ErrRenameFailed)
	})
}

// ── ExportAll ────────────────────────────────────────────────────────────────

func TestClientTransferService_ExportAll_LocalIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)

	n, err := f.svc.ExportAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClientTransferService_ExportAll_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()
	require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageFile))

	_, err := f.svc.ExportAll(ctx)
	require.ErrorIs(t, err, ErrNothingToExport)
}

func TestClientTransferService_ExportAll_FileDeduplicatesNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()
	require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageFile))

	first, err := f.storages.DeckRepository.CreateDeck(ctx, "same name", "", nil)
	require.NoError(t, err)
	second, err := f.storages.DeckRepository.CreateDeck(ctx, "same  name", "", nil)
	require.NoError(t, err)

	n, err := f.svc.ExportAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.FileExists(t, filepath.Join(f.dir, "same_name.json"))
	assert.FileExists(t, filepath.Join(f.dir, "same_name_"+second.ID+".json"))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestClientTransferService_ExportAll_DottedNamesKeepSeparateFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()
	require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageFile))

	_, err := f.storages.DeckRepository.CreateDeck(ctx, "Notes v1.1", "", []models.Flashcard{{Front: "a", Back: "1"}})
	require.NoError(t, err)
	_, err = f.storages.DeckRepository.CreateDeck(ctx, "Notes v1.2", "", []models.Flashcard{{Front: "b", Back: "2"}})
	require.NoError(t, err)

	n, err := f.svc.ExportAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"Notes_v1.1.json", "Notes_v1.2.json"}, names)
}

func TestClientTransferService_ExportDeck_DottedName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()
	require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageFile))

	location, err := f.svc.ExportDeck(ctx, testDeck("d1", "Chapter 1.5"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.dir, "Chapter_1.5.json"), location)
}

func TestClientTransferService_ExportAll_RemoteJoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()
	require.NoError(t, f.prefs.SetStorageType(ctx, models.StorageRemote))

	_, err := f.storages.DeckRepository.CreateDeck(ctx, "one", "", nil)
	require.NoError(t, err)
	_, err = f.storages.DeckRepository.CreateDeck(ctx, "two", "", nil)
	require.NoError(t, err)

	f.remote.EXPECT().HasCredential().Return(true).Times(2)
	f.remote.EXPECT().Write(gomock.Any(), "one.json", gomock.Any()).Return(adapter.ErrServiceUnavailable)
	f.remote.EXPECT().Write(gomock.Any(), "two.json", gomock.Any()).Return(nil)

	n, err := f.svc.ExportAll(ctx)
	assert.Equal(t, 1, n)
	require.ErrorIs(t, err, adapter.ErrServiceUnavailable)
}

// ── MergeGeneratedCards ──────────────────────────────────────────────────────

func TestClientTransferService_MergeGeneratedCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)
	ctx := context.Background()

	deck, err := f.storages.DeckRepository.CreateDeck(ctx, "deck", "",
		[]models.Flashcard{{Front: "old", Back: "1"}})
	require.NoError(t, err)

	merged, err := f.svc.MergeGeneratedCards(ctx, deck, []models.Flashcard{
		{Front: "new", Back: "2"},
		{Front: "", Back: " "},
		{Front: "newer", Back: "3"},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.Flashcard{
		{Front: "old", Back: "1"},
		{Front: "new", Back: "2"},
		{Front: "newer", Back: "3"},
	}, merged.Cards)
	assert.False(t, merged.UpdatedAt.Before(deck.UpdatedAt))
	assert.Len(t, deck.Cards, 1, "input deck is not modified")

	index := f.storages.DeckRepository.ListDecks(ctx)
	require.Len(t, index, 1)
	assert.Equal(t, 3, index[0].CardCount)
}

func TestClientTransferService_MergeGeneratedCards_NothingUsable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTransferFixture(t, ctrl)

	_, err := f.svc.MergeGeneratedCards(context.Background(), testDeck("d1", "deck"),
		[]models.Flashcard{{Front: " ", Back: ""}})
	require.ErrorIs(t, err, ErrNoCardsGenerated)
}
