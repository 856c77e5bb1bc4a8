// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImport_CardList(t *testing.T) {
	payload, err := ParseImport([]byte(`[["a","b"],["c","d"]]`))
	require.NoError(t, err)

	assert.Equal(t, ImportCardList, payload.Kind)
	assert.Equal(t, []Flashcard{{Front: "a", Back: "b"}, {Front: "c", Back: "d"}}, payload.Cards)
}

func TestParseImport_EmptyCardList(t *testing.T) {
	payload, err := ParseImport([]byte(` [] `))
	require.NoError(t, err)

	assert.Equal(t, ImportCardList, payload.Kind)
	assert.NotNil(t, payload.Cards)
	assert.Empty(t, payload.Cards)
}

func TestParseImport_DeckDocument(t *testing.T) {
	raw := `{
		"id": "deck-1",
		"name": "Bones",
		"description": "anatomy",
		"createdAt": "2026-01-02T03:04:05.000Z",
		"updatedAt": "2026-01-03T03:04:05.000Z",
		"cards": [["femur","leg"]]
	}`

	payload, err := ParseImport([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, ImportFullDeck, payload.Kind)
	assert.Equal(t, "deck-1", payload.Deck.ID)
	assert.Equal(t, "Bones", payload.Deck.Name)
	assert.Equal(t, "anatomy", payload.Deck.Description)
	assert.True(t, payload.Deck.CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
	assert.Equal(t, []Flashcard{{Front: "femur", Back: "leg"}}, payload.Deck.Cards)
}

func TestParseImport_Rejected(t *testing.T) {
	tests := map[string]string{
		"empty":            ``,
		"scalar":           `42`,
		"string":           `"deck"`,
		"object no id":     `{"name":"x","cards":[]}`,
		"object empty id":  `{"id":"","name":"x","cards":[]}`,
		"object no name":   `{"id":"1","cards":[]}`,
		"cards not array":  `{"id":"1","name":"x","cards":{}}`,
		"list of strings":  `["a","b"]`,
		"list bad pair":    `[["a","b","c"]]`,
		"list blank card":  `[["a","b"],["",""]]`,
		"deck blank card":  `{"id":"1","name":"x","cards":[[" ",""]]}`,
		"broken json":      `[["a","b"]`,
		"list of numbers":  `[[1,2]]`,
		"deck bad created": `{"id":"1","name":"x","createdAt":"yesterday","cards":[]}`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseImport([]byte(raw))
			require.ErrorIs(t, err, ErrUnrecognizedFormat)
		})
	}
}
