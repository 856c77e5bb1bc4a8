// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-deck-keeper/internal/adapter"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/store"
	"github.com/MKhiriev/go-deck-keeper/models"
)

const (
	importedDeckName = "Imported Deck"
	localLocation    = "local storage"
)

type clientTransferService struct {
	repo     store.DeckRepository
	exporter store.FileExporter
	remote   adapter.RemoteStore
	prefs    ClientPreferenceService
	logger   *logger.Logger
}

func NewClientTransferService(
	storages *store.ClientStorages,
	remote adapter.RemoteStore,
	prefs ClientPreferenceService,
	logger *logger.Logger,
) ClientTransferService {
	return &clientTransferService{
		repo:     storages.DeckRepository,
		exporter: storages.FileExporter,
		remote:   remote,
		prefs:    prefs,
		logger:   logger.WithComponent("transfer_service"),
	}
}

func (t *clientTransferService) ImportFromJSON(ctx context.Context, raw []byte, suggestedName string) (models.Deck, error) {
	payload, err := models.ParseImport(raw)
	if err != nil {
		t.logger.Info().
			Err(err).
			Str("func", "clientTransferService.ImportFromJSON").
			Msg("import rejected")
		return models.Deck{}, err
	}

	switch payload.Kind {
	case models.ImportFullDeck:
		deck, err := t.repo.SaveDeck(ctx, payload.Deck)
		if err != nil {
			return deck, fmt.Errorf("save imported deck: %w", err)
		}
		return deck, nil
	case models.ImportCardList:
		name := strings.TrimSpace(suggestedName)
		if name == "" {
			name = importedDeckName
		}
		deck, err := t.repo.CreateDeck(ctx, name, "", payload.Cards)
		if err != nil {
			return deck, fmt.Errorf("create imported deck: %w", err)
		}
		return deck, nil
	default:
		return models.Deck{}, models.ErrUnrecognizedFormat
	}
}

func (t *clientTransferService) ImportFromFile(ctx context.Context, path string) (models.Deck, error) {
	raw, err := t.exporter.ReadFile(ctx, path)
	if err != nil {
		return models.Deck{}, fmt.Errorf("import from file: %w", err)
	}

	base := filepath.Base(path)
	return t.ImportFromJSON(ctx, raw, strings.TrimSuffix(base, filepath.Ext(base)))
}

func (t *clientTransferService) ImportFromRemote(ctx context.Context, name string) (models.Deck, error) {
	if !t.remote.HasCredential() {
		return models.Deck{}, adapter.ErrNoCredential
	}

	raw, ok := t.remote.Read(ctx, name)
	if !ok {
		return models.Deck{}, fmt.Errorf("%w: %s", ErrRemoteDeckNotFound, models.JSONFileName(name))
	}

	base := models.JSONFileName(name)
	return t.ImportFromJSON(ctx, raw, strings.TrimSuffix(base, filepath.Ext(base)))
}

// ExportDeck routes deck to the selected backend. The local backend is the
// deck's own record, so exporting there is a save.
func (t *clientTransferService) ExportDeck(ctx context.Context, deck models.Deck) (string, error) {
	storageType := t.prefs.StorageType()

	switch storageType {
	case models.StorageLocal:
		if _, err := t.repo.SaveDeck(ctx, deck); err != nil {
			return "", fmt.Errorf("export to local storage: %w", err)
		}
		return localLocation, nil
	case models.StorageFile, models.StorageRemote:
		return t.writeTo(ctx, storageType, t.prefs.TargetName(deck), deck)
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownStorageType, storageType)
	}
}

// ExportAll writes every resolvable deck under its own file name. Decks whose
// file names collide get their id appended. Failures do not
// stop the run; they are joined into the returned error.
func (t *clientTransferService) ExportAll(ctx context.Context) (int, error) {
	storageType := t.prefs.StorageType()
	if storageType == models.StorageLocal {
		return 0, nil
	}

	index := t.repo.ListDecks(ctx)
	if len(index) == 0 {
		return 0, ErrNothingToExport
	}

	var (
		written int
		errs    []error
		seen    = make(map[string]struct{}, len(index))
	)
	for _, meta := range index {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		deck, ok := t.repo.GetDeck(ctx, meta.ID)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", store.ErrDeckNotFound, meta.ID))
			continue
		}

		name := models.DeckFileName(deck.Name)
		if _, dup := seen[name]; dup {
			name = models.WithFileSuffix(name, deck.ID)
		}
		seen[name] = struct{}{}

		if _, err := t.writeTo(ctx, storageType, name, deck); err != nil {
			errs = append(errs, err)
			continue
		}
		written++
	}

	t.logger.Info().
		Str("func", "clientTransferService.ExportAll").
		Str("storage_type", storageType.String()).
		Int("written", written).
		Int("failed", len(errs)).
		Msg("exported decks")

	return written, errors.Join(errs...)
}

func (t *clientTransferService) MergeGeneratedCards(ctx context.Context, deck models.Deck, cards []models.Flashcard) (models.Deck, error) {
	kept := dropBlankCards(cards)
	if len(kept) == 0 {
		return deck, ErrNoCardsGenerated
	}

	merged := deck.Clone()
	merged.Cards = append(merged.Cards, kept...)

	saved, err := t.repo.SaveDeck(ctx, merged)
	if err != nil {
		return saved, fmt.Errorf("save merged deck: %w", err)
	}
	return saved, nil
}

func (t *clientTransferService) writeTo(ctx context.Context, storageType models.StorageType, name string, deck models.Deck) (string, error) {
	switch storageType {
	case models.StorageFile:
		if err := t.exporter.Write(ctx, name, deck); err != nil {
			return "", fmt.Errorf("export to file: %w", err)
		}
		return t.exporter.Location(name), nil
	case models.StorageRemote:
		if !t.remote.HasCredential() {
			return "", adapter.ErrNoCredential
		}
		if err := t.remote.Write(ctx, name, deck); err != nil {
			return "", fmt.Errorf("export to remote: %w", err)
		}
		return models.JSONFileName(name), nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownStorageType, storageType)
	}
}
