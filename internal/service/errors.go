// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyDeckName       = errors.New("deck name is empty")
	ErrNoActiveDeck        = errors.New("no deck selected")
	ErrCardIndexOutOfRange = errors.New("card index out of range")

	ErrRemoteDeckNotFound = errors.New("deck was not found in remote storage")
	ErrNothingToExport    = errors.New("no decks to export")

	ErrEmptyInputText   = errors.New("no text to generate flashcards from")
	ErrNoCardsGenerated = errors.New("generation returned no usable flashcards")
	ErrGenerationFailed = errors.New("flashcard generation failed")
)
