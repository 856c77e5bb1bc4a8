// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ImportKind tags the shape detected by [ParseImport].
type ImportKind int

const (
	// ImportFullDeck is a complete deck document carrying id, name and cards.
	ImportFullDeck ImportKind = iota + 1
	// ImportCardList is the legacy bare list of [front, back] pairs.
	ImportCardList
)

// String implements fmt.Stringer.
func (k ImportKind) String() string {
	switch k {
	case ImportFullDeck:
		return "deck document"
	case ImportCardList:
		return "card list"
	default:
		return "unknown"
	}
}

// ImportPayload is the result of parsing import input. Exactly one of Deck
// or Cards is meaningful, selected by Kind.
type ImportPayload struct {
	Kind  ImportKind
	Deck  Deck
	Cards []Flashcard
}

type deckShape struct {
	ID    *string         `json:"id"`
	Name  *string         `json:"name"`
	Cards json.RawMessage `json:"cards"`
}

// ParseImport detects the format of raw import input. It first tries the
// deck document shape (an object with a non-empty string id, a string name
// and a cards array), then the bare card list shape. Anything else, and any
// card that is malformed or blank, fails with [ErrUnrecognizedFormat] so
// that nothing is partially imported.
func ParseImport(raw []byte) (ImportPayload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ImportPayload{}, fmt.Errorf("%w: empty input", ErrUnrecognizedFormat)
	}

	switch trimmed[0] {
	case '{':
		return parseDeckDocument(trimmed)
	case '[':
		return parseCardList(trimmed)
	default:
		return ImportPayload{}, ErrUnrecognizedFormat
	}
}

func parseDeckDocument(raw []byte) (ImportPayload, error) {
	var shape deckShape
	if err := json.Unmarshal(raw, &shape); err != nil {
		return ImportPayload{}, fmt.Errorf("%w: %w", ErrUnrecognizedFormat, err)
	}

	cards := bytes.TrimSpace(shape.Cards)
	if shape.ID == nil || *shape.ID == "" || shape.Name == nil || len(cards) == 0 || cards[0] != '[' {
		return ImportPayload{}, fmt.Errorf("%w: deck document needs id, name and cards", ErrUnrecognizedFormat)
	}

	var deck Deck
	if err := json.Unmarshal(raw, &deck); err != nil {
		return ImportPayload{}, fmt.Errorf("%w: %w", ErrUnrecognizedFormat, err)
	}
	if err := checkCards(deck.Cards); err != nil {
		return ImportPayload{}, err
	}
	if deck.Cards == nil {
		deck.Cards = []Flashcard{}
	}

	return ImportPayload{Kind: ImportFullDeck, Deck: deck}, nil
}

func parseCardList(raw []byte) (ImportPayload, error) {
	var cards []Flashcard
	if err := json.Unmarshal(raw, &cards); err != nil {
		return ImportPayload{}, fmt.Errorf("%w: %w", ErrUnrecognizedFormat, err)
	}
	if err := checkCards(cards); err != nil {
		return ImportPayload{}, err
	}
	if cards == nil {
		cards = []Flashcard{}
	}

	return ImportPayload{Kind: ImportCardList, Cards: cards}, nil
}

func checkCards(cards []Flashcard) error {
	for i, card := range cards {
		if card.IsBlank() {
			return fmt.Errorf("%w: card %d: %w", ErrUnrecognizedFormat, i+1, ErrEmptyFlashcard)
		}
	}
	return nil
}
