// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/models"
)

// Persisted keys of the deck catalog.
const (
	deckIndexKey  = "deckIndex"
	deckKeyPrefix = "deck_"
)

func deckKey(id string) string {
	return deckKeyPrefix + id
}

// IDGenerator allocates fresh deck ids.
type IDGenerator interface {
	Generate() string
}

type deckRepository struct {
	kv      KeyValueStore
	session SessionState
	ids     IDGenerator
	now     func() time.Time
	logger  *logger.Logger

	// serialises read-modify-write cycles of the index
	mu sync.Mutex
}

// NewDeckRepository returns a [DeckRepository] storing deck records and the
// deck index in kv and the active deck pointer in session.
func NewDeckRepository(kv KeyValueStore, session SessionState, ids IDGenerator, logger *logger.Logger) DeckRepository {
	return &deckRepository{
		kv:      kv,
		session: session,
		ids:     ids,
		now:     time.Now,
		logger:  logger.WithComponent("deck_repository"),
	}
}

// ListDecks returns the deck index in its stored order. A missing or
// corrupt index yields an empty list.
func (r *deckRepository) ListDecks(ctx context.Context) []models.DeckMetadata {
	index, _ := r.readIndex(ctx)
	return index
}

// GetDeck returns the deck record for id. Missing and corrupt records are
// both reported as absent.
func (r *deckRepository) GetDeck(ctx context.Context, id string) (models.Deck, bool) {
	if id == "" {
		return models.Deck{}, false
	}

	raw, ok := r.kv.Read(ctx, deckKey(id))
	if !ok {
		return models.Deck{}, false
	}

	var deck models.Deck
	if err := json.Unmarshal(raw, &deck); err != nil {
		r.logger.Warn().
			Err(err).
			Str("func", "deckRepository.GetDeck").
			Str("deck_id", id).
			Msg("corrupt deck record, treating as missing")
		return models.Deck{}, false
	}
	if deck.ID != id {
		r.logger.Warn().
			Str("func", "deckRepository.GetDeck").
			Str("deck_id", id).
			Str("record_id", deck.ID).
			Msg("deck record id does not match its key, treating as missing")
		return models.Deck{}, false
	}

	return deck.Clone(), true
}

// SaveDeck refreshes UpdatedAt, writes the record and upserts its metadata
// into the index. The first deck saved into an empty catalog becomes active.
// A missing or unreadable index is recovered from the records first.
//
// When the record is written but the index is not, the saved deck is
// returned together with an error wrapping [ErrIndexWrite].
func (r *deckRepository) SaveDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(ctx, deck, models.Timestamp(r.now()))
}

func (r *deckRepository) CreateDeck(ctx context.Context, name, description string, cards []models.Flashcard) (models.Deck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := models.Timestamp(r.now())
	deck := models.Deck{
		ID:          r.ids.Generate(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Cards:       cards,
	}

	return r.save(ctx, deck, now)
}

func (r *deckRepository) save(ctx context.Context, deck models.Deck, now time.Time) (models.Deck, error) {
	if deck.ID == "" {
		return models.Deck{}, ErrEmptyDeckID
	}

	deck = deck.Clone()
	if !deck.CreatedAt.IsZero() {
		deck.CreatedAt = models.Timestamp(deck.CreatedAt)
	}
	deck.UpdatedAt = models.Timestamp(deck.UpdatedAt)
	deck.Touch(now)

	index := r.loadIndex(ctx)
	wasEmpty := len(index) == 0

	if err := r.kv.Write(ctx, deckKey(deck.ID), deck); err != nil {
		r.logger.Err(err).
			Str("func", "deckRepository.save").
			Str("deck_id", deck.ID).
			Msg("failed to write deck record")
		return models.Deck{}, fmt.Errorf("%w: %w", ErrDeckNotSaved, err)
	}

	index = upsertMetadata(index, deck.Metadata())
	if err := r.kv.Write(ctx, deckIndexKey, index); err != nil {
		r.logger.Error().
			Err(err).
			Str("func", "deckRepository.save").
			Str("deck_id", deck.ID).
			Msg("deck record saved but index write failed, index needs rebuild")
		return deck, fmt.Errorf("%w: %w", ErrIndexWrite, err)
	}

	if wasEmpty {
		if err := r.session.SetActiveDeckID(ctx, deck.ID); err != nil {
			r.logger.Warn().
				Err(err).
				Str("func", "deckRepository.save").
				Str("deck_id", deck.ID).
				Msg("failed to activate first deck")
		}
	}

	return deck, nil
}

// DeleteDeck removes the record and its index entry. When the deleted deck
// was active the pointer moves to the first remaining deck, or is cleared.
// The pointer is repaired even when the index write fails.
func (r *deckRepository) DeleteDeck(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := r.loadIndex(ctx)
	pos := slices.IndexFunc(index, func(m models.DeckMetadata) bool { return m.ID == id })

	if pos < 0 && !r.hasRecord(ctx, id) {
		return fmt.Errorf("%w: %s", ErrDeckNotFound, id)
	}

	if err := r.kv.Delete(ctx, deckKey(id)); err != nil {
		r.logger.Err(err).
			Str("func", "deckRepository.DeleteDeck").
			Str("deck_id", id).
			Msg("failed to delete deck record")
		return fmt.Errorf("delete deck record: %w", err)
	}

	var indexErr error
	if pos >= 0 {
		index = slices.Delete(index, pos, pos+1)
		if err := r.kv.Write(ctx, deckIndexKey, index); err != nil {
			r.logger.Error().
				Err(err).
				Str("func", "deckRepository.DeleteDeck").
				Str("deck_id", id).
				Msg("deck record deleted but index write failed, index needs rebuild")
			indexErr = fmt.Errorf("%w: %w", ErrIndexWrite, err)
		}
	}

	if activeID, ok := r.session.ActiveDeckID(); ok && activeID == id {
		if err := r.repointActive(ctx, index); err != nil {
			return errors.Join(indexErr, err)
		}
	}

	return indexErr
}

func (r *deckRepository) ActiveDeckID(_ context.Context) (string, bool) {
	return r.session.ActiveDeckID()
}

// SetActiveDeck stores id as the active deck without checking it exists.
func (r *deckRepository) SetActiveDeck(ctx context.Context, id string) error {
	return r.session.SetActiveDeckID(ctx, id)
}

// RebuildIndex recreates the index from the deck records, which are the
// source of truth. Ids already indexed keep their position; records missing
// from the index are appended by creation time. Unreadable records are
// skipped. A pointer to a deck that no longer exists is repaired.
//
// Running it on a consistent store rewrites the same index.
func (r *deckRepository) RebuildIndex(ctx context.Context) ([]models.DeckMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.readRecords(ctx)
	if err != nil {
		return nil, err
	}

	prior, _ := r.readIndex(ctx)
	rebuilt, appended := orderIndex(prior, records)

	if err = r.kv.Write(ctx, deckIndexKey, rebuilt); err != nil {
		r.logger.Err(err).
			Str("func", "deckRepository.RebuildIndex").
			Msg("failed to write rebuilt index")
		return nil, fmt.Errorf("%w: %w", ErrIndexWrite, err)
	}

	if activeID, ok := r.session.ActiveDeckID(); ok {
		if _, exists := records[activeID]; !exists {
			if err = r.repointActive(ctx, rebuilt); err != nil {
				return rebuilt, err
			}
		}
	}

	r.logger.Debug().
		Str("func", "deckRepository.RebuildIndex").
		Int("decks", len(rebuilt)).
		Int("appended", appended).
		Msg("deck index rebuilt")

	return rebuilt, nil
}

// readRecords returns every readable deck record keyed by id.
func (r *deckRepository) readRecords(ctx context.Context) (map[string]models.Deck, error) {
	keys, err := r.kv.Keys(ctx, deckKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list deck records: %w", err)
	}

	records := make(map[string]models.Deck, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, deckKeyPrefix)
		deck, ok := r.GetDeck(ctx, id)
		if !ok {
			r.logger.Warn().
				Str("func", "deckRepository.readRecords").
				Str("key", key).
				Msg("skipping unreadable deck record")
			continue
		}
		records[id] = deck
	}
	return records, nil
}

// orderIndex builds an index over records: ids in prior keep their order,
// the rest follow by creation time.
func orderIndex(prior []models.DeckMetadata, records map[string]models.Deck) ([]models.DeckMetadata, int) {
	rebuilt := make([]models.DeckMetadata, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, m := range prior {
		deck, ok := records[m.ID]
		if _, dup := seen[m.ID]; !ok || dup {
			continue
		}
		rebuilt = append(rebuilt, deck.Metadata())
		seen[m.ID] = struct{}{}
	}

	missing := make([]models.Deck, 0)
	for id, deck := range records {
		if _, ok := seen[id]; !ok {
			missing = append(missing, deck)
		}
	}
	slices.SortFunc(missing, func(a, b models.Deck) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	for _, deck := range missing {
		rebuilt = append(rebuilt, deck.Metadata())
	}

	return rebuilt, len(missing)
}

func (r *deckRepository) repointActive(ctx context.Context, index []models.DeckMetadata) error {
	if len(index) == 0 {
		if err := r.session.ClearActiveDeckID(ctx); err != nil {
			return fmt.Errorf("clear active deck: %w", err)
		}
		return nil
	}

	if err := r.session.SetActiveDeckID(ctx, index[0].ID); err != nil {
		return fmt.Errorf("repoint active deck: %w", err)
	}
	return nil
}

// readIndex decodes the stored index. ok is false when the index is missing
// or unreadable; the returned slice is then empty.
func (r *deckRepository) readIndex(ctx context.Context) (index []models.DeckMetadata, ok bool) {
	index = make([]models.DeckMetadata, 0)

	raw, found := r.kv.Read(ctx, deckIndexKey)
	if !found {
		return index, false
	}

	if err := json.Unmarshal(raw, &index); err != nil {
		r.logger.Warn().
			Err(err).
			Str("func", "deckRepository.readIndex").
			Msg("corrupt deck index")
		return make([]models.DeckMetadata, 0), false
	}
	if index == nil {
		index = make([]models.DeckMetadata, 0)
	}

	return index, true
}

// loadIndex is the index a mutation starts from. When the stored index is
// missing or unreadable it is recovered from the records so that writing it
// back cannot drop other decks.
func (r *deckRepository) loadIndex(ctx context.Context) []models.DeckMetadata {
	index, ok := r.readIndex(ctx)
	if ok {
		return index
	}

	records, err := r.readRecords(ctx)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("func", "deckRepository.loadIndex").
			Msg("cannot recover deck index from records")
		return index
	}
	if len(records) == 0 {
		return index
	}

	recovered, _ := orderIndex(nil, records)
	r.logger.Warn().
		Str("func", "deckRepository.loadIndex").
		Int("decks", len(recovered)).
		Msg("deck index missing or unreadable, recovered from records")
	return recovered
}

func (r *deckRepository) hasRecord(ctx context.Context, id string) bool {
	keys, err := r.kv.Keys(ctx, deckKey(id))
	if err != nil {
		return false
	}
	return slices.Contains(keys, deckKey(id))
}

// upsertMetadata replaces the entry with the same id in place or appends a
// new one.
func upsertMetadata(index []models.DeckMetadata, m models.DeckMetadata) []models.DeckMetadata {
	if pos := slices.IndexFunc(index, func(e models.DeckMetadata) bool { return e.ID == m.ID }); pos >= 0 {
		index[pos] = m
		return index
	}
	return append(index, m)
}
