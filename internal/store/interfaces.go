// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-deck-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobWriter writes a JSON-serialisable payload under a name.
type BlobWriter interface {
	Write(ctx context.Context, name string, payload any) error
}

// BlobReader reads the payload stored under a name. The boolean is false
// when the name is missing or its content cannot be used; absence is never
// an error.
type BlobReader interface {
	Read(ctx context.Context, name string) (json.RawMessage, bool)
}

// BlobStore is the uniform read/write contract shared by backends.
type BlobStore interface {
	BlobWriter
	BlobReader
}

// KeyValueStore is the durable key-value backend the deck repository and
// session state persist into.
type KeyValueStore interface {
	BlobStore
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists every stored key starting with prefix, in key order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// FileExporter is the file backend. Write saves the payload as a pretty
// printed JSON file named after name with a single ".json" extension.
type FileExporter interface {
	BlobWriter
	// Location reports where Write would place name.
	Location(name string) string
	// ReadFile reads a user-selected file for import. It never touches the
	// network.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// SessionState holds the process-wide pointers that must survive restarts:
// the active deck id, the selected storage backend and the target file name.
// Load reads them once at startup; every setter persists immediately.
type SessionState interface {
	Load(ctx context.Context) error

	ActiveDeckID() (string, bool)
	SetActiveDeckID(ctx context.Context, id string) error
	ClearActiveDeckID(ctx context.Context) error

	StorageType() models.StorageType
	SetStorageType(ctx context.Context, storageType models.StorageType) error

	FileName() string
	SetFileName(ctx context.Context, name string) error
}

// DeckRepository owns deck records, the deck index and the active deck
// pointer. It is the only writer of the deck_* and deckIndex keys.
type DeckRepository interface {
	ListDecks(ctx context.Context) []models.DeckMetadata
	GetDeck(ctx context.Context, id string) (models.Deck, bool)
	SaveDeck(ctx context.Context, deck models.Deck) (models.Deck, error)
	DeleteDeck(ctx context.Context, id string) error
	CreateDeck(ctx context.Context, name, description string, cards []models.Flashcard) (models.Deck, error)

	ActiveDeckID(ctx context.Context) (string, bool)
	SetActiveDeck(ctx context.Context, id string) error

	RebuildIndex(ctx context.Context) ([]models.DeckMetadata, error)
}
