// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-deck-keeper/internal/adapter"
	"github.com/MKhiriev/go-deck-keeper/internal/config"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/store"
)

// ClientServices groups the services the client application works with.
type ClientServices struct {
	DeckService       ClientDeckService
	TransferService   ClientTransferService
	PreferenceService ClientPreferenceService
	GeneratorService  ClientGeneratorService
}

// NewClientServices wires every client service over the given storages and
// adapters.
func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteStore,
	generator adapter.GeneratorAdapter,
	cfg config.App,
	logger *logger.Logger,
) *ClientServices {
	prefs := NewClientPreferenceService(storages, logger)

	return &ClientServices{
		DeckService:       NewClientDeckService(storages, cfg.DefaultDeckName, logger),
		TransferService:   NewClientTransferService(storages, remote, prefs, logger),
		PreferenceService: prefs,
		GeneratorService:  NewClientGeneratorService(generator, logger),
	}
}
