// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeck_Metadata(t *testing.T) {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	deck := Deck{
		ID:          "d1",
		Name:        "Bones",
		Description: "anatomy",
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Hour),
		Cards:       []Flashcard{{Front: "a", Back: "b"}, {Front: "c", Back: "d"}},
	}

	assert.Equal(t, DeckMetadata{
		ID:          "d1",
		Name:        "Bones",
		Description: "anatomy",
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Hour),
		CardCount:   2,
	}, deck.Metadata())
}

func TestDeck_Touch(t *testing.T) {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("zero created is initialised", func(t *testing.T) {
		var d Deck
		d.Touch(created)
		assert.Equal(t, created, d.CreatedAt)
		assert.Equal(t, created, d.UpdatedAt)
	})

	t.Run("moves forward", func(t *testing.T) {
		d := Deck{CreatedAt: created, UpdatedAt: created}
		d.Touch(created.Add(time.Minute))
		assert.Equal(t, created.Add(time.Minute), d.UpdatedAt)
	})

	t.Run("never moves backwards", func(t *testing.T) {
		d := Deck{CreatedAt: created, UpdatedAt: created.Add(time.Hour)}
		d.Touch(created.Add(time.Minute))
		assert.Equal(t, created.Add(time.Hour), d.UpdatedAt)
	})

	t.Run("never before created", func(t *testing.T) {
		d := Deck{CreatedAt: created}
		d.Touch(created.Add(-time.Hour))
		assert.Equal(t, created, d.UpdatedAt)
	})
}

func TestDeck_CloneDoesNotAlias(t *testing.T) {
	d := Deck{Cards: []Flashcard{{Front: "a", Back: "b"}}}
	c := d.Clone()
	c.Cards[0].Front = "changed"

	assert.Equal(t, "a", d.Cards[0].Front)
	assert.NotNil(t, Deck{}.Clone().Cards)
}

func TestNotice_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	n := NewNotice(NoticeFailure, "Failed to save", now, 3*time.Second)

	assert.True(t, n.IsFailure())
	assert.False(t, n.Expired(now.Add(2*time.Second)))
	assert.True(t, n.Expired(now.Add(3*time.Second)))
}
