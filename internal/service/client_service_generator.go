// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-deck-keeper/internal/adapter"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/models"
)

type clientGeneratorService struct {
	generator adapter.GeneratorAdapter
	logger    *logger.Logger
}

func NewClientGeneratorService(generator adapter.GeneratorAdapter, logger *logger.Logger) ClientGeneratorService {
	return &clientGeneratorService{
		generator: generator,
		logger:    logger.WithComponent("generator_service"),
	}
}

// Generate sends inputText to the generation service. Pairs with both
// sides blank are dropped; an answer with nothing left is ErrNoCardsGenerated.
func (g *clientGeneratorService) Generate(ctx context.Context, inputText string) ([]models.Flashcard, error) {
	if strings.TrimSpace(inputText) == "" {
		return nil, ErrEmptyInputText
	}

	generated, err := g.generator.Generate(ctx, inputText)
	if err != nil {
		g.logger.Err(err).
			Str("func", "clientGeneratorService.Generate").
			Msg("generation request failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	cards := dropBlankCards(generated)
	if dropped := len(generated) - len(cards); dropped > 0 {
		g.logger.Info().
			Str("func", "clientGeneratorService.Generate").
			Int("dropped", dropped).
			Msg("dropped blank generated cards")
	}
	if len(cards) == 0 {
		return nil, ErrNoCardsGenerated
	}

	return cards, nil
}

func dropBlankCards(cards []models.Flashcard) []models.Flashcard {
	kept := make([]models.Flashcard, 0, len(cards))
	for _, card := range cards {
		if !card.IsBlank() {
			kept = append(kept, card)
		}
	}
	return kept
}
