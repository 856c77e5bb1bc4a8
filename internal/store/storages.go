// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deck-keeper/internal/config"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/utils"
)

// ClientStorages groups the local storage components into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// KeyValueStore is the durable key-value backend.
	KeyValueStore KeyValueStore

	// Session holds the active deck pointer and the storage preference.
	Session SessionState

	// DeckRepository owns deck records and the deck index.
	DeckRepository DeckRepository

	// FileExporter writes exported decks into the export directory.
	FileExporter FileExporter

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the key-value store, session state, deck repository and file
//     exporter on top of it.
//
// The session state is not loaded here; callers invoke
// [SessionState.Load] once at startup.
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := newClientStorages(NewSQLiteKeyValueStore(db, logger), cfg.Files.ExportDir, logger)
	storages.db = db

	return storages, nil
}

// NewInMemoryClientStorages wires the same components over an in-memory
// key-value store. Nothing survives the process.
func NewInMemoryClientStorages(exportDir string, logger *logger.Logger) *ClientStorages {
	return newClientStorages(NewMemoryKeyValueStore(logger), exportDir, logger)
}

func newClientStorages(kv KeyValueStore, exportDir string, logger *logger.Logger) *ClientStorages {
	session := NewSessionState(kv, logger)

	return &ClientStorages{
		KeyValueStore:  kv,
		Session:        session,
		DeckRepository: NewDeckRepository(kv, session, utils.NewUUIDGenerator(), logger),
		FileExporter:   NewFileExporter(exportDir, logger),
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
