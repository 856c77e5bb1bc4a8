// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/store"
	"github.com/MKhiriev/go-deck-keeper/models"
)

type clientDeckService struct {
	repo            store.DeckRepository
	defaultDeckName string
	logger          *logger.Logger
}

// NewClientDeckService returns a [ClientDeckService] over the deck
// repository of storages. defaultDeckName names the starter deck created by
// Bootstrap.
func NewClientDeckService(storages *store.ClientStorages, defaultDeckName string, logger *logger.Logger) ClientDeckService {
	return &clientDeckService{
		repo:            storages.DeckRepository,
		defaultDeckName: defaultDeckName,
		logger:          logger.WithComponent("deck_service"),
	}
}

func (s *clientDeckService) List(ctx context.Context) []models.DeckMetadata {
	return s.repo.ListDecks(ctx)
}

func (s *clientDeckService) Get(ctx context.Context, id string) (models.Deck, error) {
	deck, ok := s.repo.GetDeck(ctx, id)
	if !ok {
		return models.Deck{}, fmt.Errorf("%w: %s", store.ErrDeckNotFound, id)
	}
	return deck, nil
}

func (s *clientDeckService) Create(ctx context.Context, name, description string, cards []models.Flashcard) (models.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Deck{}, ErrEmptyDeckName
	}
	if err := checkCards(cards); err != nil {
		return models.Deck{}, err
	}

	deck, err := s.repo.CreateDeck(ctx, name, strings.TrimSpace(description), cards)
	if err != nil {
		return deck, fmt.Errorf("create deck: %w", err)
	}

	return deck, nil
}

func (s *clientDeckService) Rename(ctx context.Context, id, name string) (models.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Deck{}, ErrEmptyDeckName
	}

	return s.mutate(ctx, id, func(deck *models.Deck) error {
		deck.Name = name
		return nil
	})
}

func (s *clientDeckService) AddCard(ctx context.Context, id, front, back string) (models.Deck, error) {
	card, err := models.NewFlashcard(front, back)
	if err != nil {
		return models.Deck{}, err
	}

	return s.mutate(ctx, id, func(deck *models.Deck) error {
		deck.Cards = append(deck.Cards, card)
		return nil
	})
}

func (s *clientDeckService) RemoveCard(ctx context.Context, id string, index int) (models.Deck, error) {
	return s.mutate(ctx, id, func(deck *models.Deck) error {
		if index < 0 || index >= len(deck.Cards) {
			return fmt.Errorf("%w: %d of %d", ErrCardIndexOutOfRange, index, len(deck.Cards))
		}
		deck.Cards = slices.Delete(deck.Cards, index, index+1)
		return nil
	})
}

func (s *clientDeckService) ReplaceCards(ctx context.Context, id string, cards []models.Flashcard) (models.Deck, error) {
	if err := checkCards(cards); err != nil {
		return models.Deck{}, err
	}

	return s.mutate(ctx, id, func(deck *models.Deck) error {
		deck.Cards = slices.Clone(cards)
		return nil
	})
}

func (s *clientDeckService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteDeck(ctx, id); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	return nil
}

func (s *clientDeckService) Select(ctx context.Context, id string) error {
	if _, ok := s.repo.GetDeck(ctx, id); !ok {
		return fmt.Errorf("%w: %s", store.ErrDeckNotFound, id)
	}

	if err := s.repo.SetActiveDeck(ctx, id); err != nil {
		return fmt.Errorf("select deck: %w", err)
	}
	return nil
}

func (s *clientDeckService) Active(ctx context.Context) (models.Deck, error) {
	id, ok := s.repo.ActiveDeckID(ctx)
	if !ok {
		return models.Deck{}, ErrNoActiveDeck
	}

	deck, ok := s.repo.GetDeck(ctx, id)
	if !ok {
		return models.Deck{}, fmt.Errorf("%w: active deck %s is missing", ErrNoActiveDeck, id)
	}
	return deck, nil
}

func (s *clientDeckService) Bootstrap(ctx context.Context) (models.Deck, error) {
	if _, err := s.repo.RebuildIndex(ctx); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "clientDeckService.Bootstrap").
			Msg("index repair failed, continuing with the stored index")
	}

	decks := s.repo.ListDecks(ctx)
	if len(decks) == 0 {
		return s.createStarterDeck(ctx)
	}

	if id, ok := s.repo.ActiveDeckID(ctx); ok {
		if deck, found := s.repo.GetDeck(ctx, id); found {
			return deck, nil
		}
		s.logger.Info().
			Str("func", "clientDeckService.Bootstrap").
			Str("deck_id", id).
			Msg("active deck pointer is stale, falling back to first deck")
	}

	for _, meta := range decks {
		deck, ok := s.repo.GetDeck(ctx, meta.ID)
		if !ok {
			continue
		}
		if err := s.repo.SetActiveDeck(ctx, deck.ID); err != nil {
			return deck, fmt.Errorf("repair active deck: %w", err)
		}
		return deck, nil
	}

	return s.createStarterDeck(ctx)
}

func (s *clientDeckService) Repair(ctx context.Context) ([]models.DeckMetadata, error) {
	index, err := s.repo.RebuildIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("repair deck index: %w", err)
	}
	return index, nil
}

func (s *clientDeckService) createStarterDeck(ctx context.Context) (models.Deck, error) {
	deck, err := s.repo.CreateDeck(ctx, s.defaultDeckName, "", nil)
	if err != nil {
		return deck, fmt.Errorf("create starter deck: %w", err)
	}

	if err = s.repo.SetActiveDeck(ctx, deck.ID); err != nil {
		return deck, fmt.Errorf("activate starter deck: %w", err)
	}

	s.logger.Info().
		Str("func", "clientDeckService.createStarterDeck").
		Str("deck_id", deck.ID).
		Msg("created starter deck")

	return deck, nil
}

// mutate loads deck id, applies change and saves it.
func (s *clientDeckService) mutate(ctx context.Context, id string, change func(deck *models.Deck) error) (models.Deck, error) {
	deck, ok := s.repo.GetDeck(ctx, id)
	if !ok {
		return models.Deck{}, fmt.Errorf("%w: %s", store.ErrDeckNotFound, id)
	}

	if err := change(&deck); err != nil {
		return models.Deck{}, err
	}

	saved, err := s.repo.SaveDeck(ctx, deck)
	if err != nil {
		return saved, fmt.Errorf("save deck: %w", err)
	}
	return saved, nil
}

func checkCards(cards []models.Flashcard) error {
	for i, card := range cards {
		if card.IsBlank() {
			return fmt.Errorf("%w: card %d", models.ErrEmptyFlashcard, i)
		}
	}
	return nil
}
