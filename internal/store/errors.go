// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the deck repository and session state.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrDeckNotFound is returned when a mutation targets a deck id that is
	// neither in the deck index nor among the persisted deck records.
	ErrDeckNotFound = errors.New("deck was not found")

	// ErrDeckNotSaved is returned when the per-deck record could not be
	// written. Nothing else was changed.
	ErrDeckNotSaved = errors.New("deck was not saved")

	// ErrIndexWrite is returned when the deck record was written but the
	// deck index could not be persisted afterwards. The records remain the
	// source of truth; [DeckRepository.RebuildIndex] restores consistency.
	ErrIndexWrite = errors.New("deck index was not written")

	// ErrEmptyDeckID is returned when a deck without an id reaches the
	// repository.
	ErrEmptyDeckID = errors.New("deck id is empty")

	// ErrEmptyKey is returned by key-value stores for an empty key.
	ErrEmptyKey = errors.New("key is empty")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite key-value store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan key-value rows")

	// ErrEncodingPayload is returned when a payload cannot be serialised to
	// JSON before being written.
	ErrEncodingPayload = errors.New("failed to encode payload")
)
