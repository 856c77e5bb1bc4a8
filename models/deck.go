// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Deck is a named, ordered collection of flashcards. It is the document
// persisted under deck_<id> and the document written on export.
//
// Card order drives the study sequence and is never re-sorted.
type Deck struct {
	// ID is assigned at creation and never changes.
	ID string `json:"id"`

	// Name is user-editable and not required to be unique.
	Name string `json:"name"`

	// Description is optional.
	Description string `json:"description,omitempty"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every save and is never before CreatedAt.
	UpdatedAt time.Time `json:"updatedAt"`

	// Cards holds the flashcards in study order.
	Cards []Flashcard `json:"cards"`
}

// DeckMetadata is the listing projection of a Deck kept in the deck index.
// It is always derived with [Deck.Metadata] and never edited on its own.
type DeckMetadata struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CardCount   int       `json:"cardCount"`
}

// Metadata derives the index entry for d.
func (d Deck) Metadata() DeckMetadata {
	return DeckMetadata{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		CardCount:   len(d.Cards),
	}
}

// Clone returns a copy of d whose card slice does not alias the original.
func (d Deck) Clone() Deck {
	d.Cards = slices.Clone(d.Cards)
	if d.Cards == nil {
		d.Cards = []Flashcard{}
	}
	return d
}

// Touch sets UpdatedAt to now, keeping UpdatedAt >= CreatedAt and never
// moving it backwards. A zero CreatedAt is initialised to now.
func (d *Deck) Touch(now time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if now.Before(d.UpdatedAt) {
		now = d.UpdatedAt
	}
	if now.Before(d.CreatedAt) {
		now = d.CreatedAt
	}
	d.UpdatedAt = now
}

// Timestamp normalises t the way deck timestamps are stored: UTC with
// millisecond precision.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
