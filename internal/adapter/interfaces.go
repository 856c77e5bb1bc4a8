// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP collaborators of the deck
// keeper.
//
// [RemoteStore] is the remote object store backend (Google Drive v3). It
// shares the blob contract of the local backends: Write reports an error,
// Read reports absence. Every call needs a bearer token; without one Write
// fails with [ErrNoCredential] and Read reports absent, in both cases
// before any request is made.
//
// [GeneratorAdapter] calls the flashcard generation service.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-deck-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore reads and writes JSON documents in a remote object store,
// addressing them by file name.
type RemoteStore interface {
	// SetToken stores the bearer token attached to every request. An empty
	// token signs the store out.
	SetToken(token string)

	// Token returns the current bearer token, or an empty string.
	Token() string

	// HasCredential reports whether a bearer token is set.
	HasCredential() bool

	// Write saves payload under name (normalised to a single ".json"
	// extension). An existing object with that name is updated in place;
	// otherwise a new object is uploaded and then named.
	Write(ctx context.Context, name string, payload any) error

	// Read fetches the object named name. Missing objects, transport
	// failures and undecodable content are all reported as absent.
	Read(ctx context.Context, name string) (json.RawMessage, bool)
}

// GeneratorAdapter turns raw text into flashcards using the generation
// service.
type GeneratorAdapter interface {
	Generate(ctx context.Context, inputText string) ([]models.Flashcard, error)
}
