// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerateRequest is the body sent to the flashcard generation service.
type GenerateRequest struct {
	InputText string `json:"inputText"`
}

// GenerateResponse is the generation service reply.
type GenerateResponse struct {
	Flashcards []Flashcard `json:"flashcards"`
}
