// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-deck-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientDeckService defines the deck operations offered to the user. Every
// mutation goes through the deck repository, which refreshes UpdatedAt and
// keeps the deck index in step with the records.
type ClientDeckService interface {
	// List returns the deck index in display order.
	List(ctx context.Context) []models.DeckMetadata

	// Get returns the deck with id, or an error wrapping
	// store.ErrDeckNotFound.
	Get(ctx context.Context, id string) (models.Deck, error)

	// Create makes a new deck. The name must not be blank and no card may
	// have both sides blank.
	Create(ctx context.Context, name, description string, cards []models.Flashcard) (models.Deck, error)

	// Rename changes the name of deck id.
	Rename(ctx context.Context, id, name string) (models.Deck, error)

	// AddCard appends a card to deck id. A card with both sides blank is
	// rejected with models.ErrEmptyFlashcard.
	AddCard(ctx context.Context, id, front, back string) (models.Deck, error)

	// RemoveCard deletes the card at index, keeping the order of the rest.
	RemoveCard(ctx context.Context, id string, index int) (models.Deck, error)

	// ReplaceCards swaps the whole card list of deck id.
	ReplaceCards(ctx context.Context, id string, cards []models.Flashcard) (models.Deck, error)

	// Delete removes deck id; the active pointer is repaired by the
	// repository.
	Delete(ctx context.Context, id string) error

	// Select makes deck id the active deck. Unknown ids are rejected.
	Select(ctx context.Context, id string) error

	// Active returns the active deck, or ErrNoActiveDeck.
	Active(ctx context.Context) (models.Deck, error)

	// Bootstrap runs once per session start. It repairs the index, creates
	// the starter deck in an empty store, and otherwise resolves the active
	// deck, falling back to the first deck and repairing the pointer.
	Bootstrap(ctx context.Context) (models.Deck, error)

	// Repair rebuilds the deck index from the deck records.
	Repair(ctx context.Context) ([]models.DeckMetadata, error)
}

// ClientTransferService moves decks in and out of the application.
type ClientTransferService interface {
	// ImportFromJSON detects the shape of raw. A full deck document is saved
	// as is, replacing any deck with the same id. A bare card list becomes a
	// new deck named suggestedName. Anything else is rejected with
	// models.ErrUnrecognizedFormat and nothing is written.
	ImportFromJSON(ctx context.Context, raw []byte, suggestedName string) (models.Deck, error)

	// ImportFromFile imports a local file; its base name is the suggested
	// deck name.
	ImportFromFile(ctx context.Context, path string) (models.Deck, error)

	// ImportFromRemote imports the remote object called name.
	ImportFromRemote(ctx context.Context, name string) (models.Deck, error)

	// ExportDeck writes deck to the selected backend and returns where it
	// went.
	ExportDeck(ctx context.Context, deck models.Deck) (string, error)

	// ExportAll writes every deck to the selected backend and returns how
	// many were written.
	ExportAll(ctx context.Context) (int, error)

	// MergeGeneratedCards appends cards to the end of deck, saves it and
	// returns the updated deck. Blank cards are dropped.
	MergeGeneratedCards(ctx context.Context, deck models.Deck, cards []models.Flashcard) (models.Deck, error)
}

// ClientPreferenceService tracks the selected backend and target file name.
// It does not check credentials; callers guard the remote backend.
type ClientPreferenceService interface {
	StorageType() models.StorageType
	SetStorageType(ctx context.Context, storageType models.StorageType) error

	FileName() string
	SetFileName(ctx context.Context, name string) error

	// TargetName is the file name deck is exported under: the stored file
	// name when set, otherwise [models.DeckFileName] of the deck name.
	TargetName(deck models.Deck) string
}

// ClientGeneratorService asks the generation service for flashcards.
type ClientGeneratorService interface {
	Generate(ctx context.Context, inputText string) ([]models.Flashcard, error)
}
