// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the local persistence of decks.
//
// A [KeyValueStore] (SQLite or in-memory) keeps JSON documents under string
// keys: one deck_<id> record per deck, the deckIndex catalog of
// [models.DeckMetadata], and the session pointers activeDeckId,
// storagePreference and storageFileName. [DeckRepository] is the only
// writer of deck records and the index, which keeps the two consistent;
// [DeckRepository.RebuildIndex] repairs them after a partial write.
//
// [FileExporter] is the file backend: it writes exported documents into a
// configured directory and reads user-selected files for import.
package store
