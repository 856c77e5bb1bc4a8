// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-deck-keeper/internal/service"
	"github.com/MKhiriev/go-deck-keeper/models"
)

// Client defines the lifecycle contract of the application.
type Client interface {
	// Services exposes the application services.
	Services() *service.ClientServices

	// Bootstrap runs the session start policy and returns the active deck.
	Bootstrap(ctx context.Context) (models.Deck, error)

	// Watch runs the background workers until ctx is done.
	Watch(ctx context.Context) error

	// Close stops the workers and releases the storages.
	Close() error
}
