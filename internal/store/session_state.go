// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/models"
)

// Persisted keys of the session pointers.
const (
	activeDeckKey        = "activeDeckId"
	storagePreferenceKey = "storagePreference"
	storageFileNameKey   = "storageFileName"
)

type sessionState struct {
	kv     KeyValueStore
	logger *logger.Logger

	mu           sync.RWMutex
	activeDeckID string
	storageType  models.StorageType
	fileName     string
}

// NewSessionState returns a [SessionState] persisted in kv. Until Load is
// called it reports no active deck and the local backend.
func NewSessionState(kv KeyValueStore, logger *logger.Logger) SessionState {
	return &sessionState{
		kv:          kv,
		logger:      logger.WithComponent("session_state"),
		storageType: models.StorageLocal,
	}
}

// Load reads all pointers from the store. Missing or unreadable values fall
// back to their defaults.
func (s *sessionState) Load(ctx context.Context) error {
	activeID := s.readString(ctx, activeDeckKey)
	fileName := s.readString(ctx, storageFileNameKey)

	storageType := models.StorageLocal
	if raw := s.readString(ctx, storagePreferenceKey); raw != "" {
		parsed, err := models.ParseStorageType(raw)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("func", "sessionState.Load").
				Msg("unknown storage preference, falling back to local")
		} else {
			storageType = parsed
		}
	}

	s.mu.Lock()
	s.activeDeckID = activeID
	s.storageType = storageType
	s.fileName = fileName
	s.mu.Unlock()

	return ctx.Err()
}

func (s *sessionState) ActiveDeckID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeDeckID, s.activeDeckID != ""
}

func (s *sessionState) SetActiveDeckID(ctx context.Context, id string) error {
	if id == "" {
		return s.ClearActiveDeckID(ctx)
	}

	if err := s.kv.Write(ctx, activeDeckKey, id); err != nil {
		return fmt.Errorf("save active deck id: %w", err)
	}

	s.mu.Lock()
	s.activeDeckID = id
	s.mu.Unlock()
	return nil
}

func (s *sessionState) ClearActiveDeckID(ctx context.Context) error {
	if err := s.kv.Delete(ctx, activeDeckKey); err != nil {
		return fmt.Errorf("clear active deck id: %w", err)
	}

	s.mu.Lock()
	s.activeDeckID = ""
	s.mu.Unlock()
	return nil
}

func (s *sessionState) StorageType() models.StorageType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.storageType
}

func (s *sessionState) SetStorageType(ctx context.Context, storageType models.StorageType) error {
	if _, err := models.ParseStorageType(string(storageType)); err != nil {
		return err
	}

	if err := s.kv.Write(ctx, storagePreferenceKey, storageType.String()); err != nil {
		return fmt.Errorf("save storage preference: %w", err)
	}

	s.mu.Lock()
	s.storageType = storageType
	s.mu.Unlock()
	return nil
}

func (s *sessionState) FileName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fileName
}

// SetFileName stores the target file name. An empty name clears it.
func (s *sessionState) SetFileName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)

	var err error
	if name == "" {
		err = s.kv.Delete(ctx, storageFileNameKey)
	} else {
		err = s.kv.Write(ctx, storageFileNameKey, name)
	}
	if err != nil {
		return fmt.Errorf("save storage file name: %w", err)
	}

	s.mu.Lock()
	s.fileName = name
	s.mu.Unlock()
	return nil
}

func (s *sessionState) readString(ctx context.Context, key string) string {
	raw, ok := s.kv.Read(ctx, key)
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "sessionState.readString").
			Str("key", key).
			Msg("stored value is not a string, ignoring")
		return ""
	}

	return value
}
