// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/store"
	"github.com/MKhiriev/go-deck-keeper/models"
)

type clientPreferenceService struct {
	session store.SessionState
	logger  *logger.Logger
}

func NewClientPreferenceService(storages *store.ClientStorages, logger *logger.Logger) ClientPreferenceService {
	return &clientPreferenceService{
		session: storages.Session,
		logger:  logger.WithComponent("preference_service"),
	}
}

func (p *clientPreferenceService) StorageType() models.StorageType {
	return p.session.StorageType()
}

func (p *clientPreferenceService) SetStorageType(ctx context.Context, storageType models.StorageType) error {
	if _, err := models.ParseStorageType(string(storageType)); err != nil {
		return err
	}

	if err := p.session.SetStorageType(ctx, storageType); err != nil {
		return fmt.Errorf("set storage type: %w", err)
	}

	p.logger.Debug().
		Str("func", "clientPreferenceService.SetStorageType").
		Str("storage_type", storageType.String()).
		Msg("storage preference changed")

	return nil
}

func (p *clientPreferenceService) FileName() string {
	return p.session.FileName()
}

func (p *clientPreferenceService) SetFileName(ctx context.Context, name string) error {
	if err := p.session.SetFileName(ctx, name); err != nil {
		return fmt.Errorf("set file name: %w", err)
	}
	return nil
}

func (p *clientPreferenceService) TargetName(deck models.Deck) string {
	if name := p.session.FileName(); name != "" {
		return models.JSONFileName(name)
	}
	return models.DeckFileName(deck.Name)
}
