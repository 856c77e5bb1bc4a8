// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrEmptyFlashcard is returned when both sides of a card are blank.
	ErrEmptyFlashcard = errors.New("flashcard front and back are both empty")

	// ErrInvalidFlashcard is returned when a card is not a two-element
	// array of strings.
	ErrInvalidFlashcard = errors.New("flashcard must be a [front, back] pair of strings")

	// ErrUnrecognizedFormat is returned when import input is neither a deck
	// document nor a bare list of card pairs.
	ErrUnrecognizedFormat = errors.New("unrecognized deck format: expected a deck document or a list of [front, back] pairs")

	// ErrUnknownStorageType is returned when a storage type string does not
	// name one of the supported backends.
	ErrUnknownStorageType = errors.New("unknown storage type")
)
