// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Flashcard is an ordered front/back pair. It has no identity of its own
// beyond its position inside a deck.
//
// On the wire a card is a two-element JSON array: ["front", "back"].
type Flashcard struct {
	Front string
	Back  string
}

// NewFlashcard builds a card, rejecting one whose sides are both blank.
func NewFlashcard(front, back string) (Flashcard, error) {
	card := Flashcard{Front: front, Back: back}
	if card.IsBlank() {
		return Flashcard{}, ErrEmptyFlashcard
	}

	return card, nil
}

// IsBlank reports whether both sides are empty after trimming whitespace.
func (f Flashcard) IsBlank() bool {
	return strings.TrimSpace(f.Front) == "" && strings.TrimSpace(f.Back) == ""
}

// MarshalJSON encodes the card as [front, back].
func (f Flashcard) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{f.Front, f.Back})
}

// UnmarshalJSON decodes a [front, back] array. Any other shape, including
// arrays with a different length, is rejected.
func (f *Flashcard) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFlashcard, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d elements", ErrInvalidFlashcard, len(pair))
	}

	f.Front, f.Back = pair[0], pair[1]
	return nil
}
