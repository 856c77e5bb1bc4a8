// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-deck-keeper/internal/adapter"
	"github.com/MKhiriev/go-deck-keeper/internal/config"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/service"
	"github.com/MKhiriev/go-deck-keeper/internal/store"
	"github.com/MKhiriev/go-deck-keeper/internal/tui"
	"github.com/MKhiriev/go-deck-keeper/internal/workers"
	"github.com/MKhiriev/go-deck-keeper/models"
)

type App struct {
	storages  *store.ClientStorages
	remote    adapter.RemoteStore
	services  *service.ClientServices
	workers   *workers.Workers
	noticeTTL time.Duration
	now       func() time.Time
	logger    *logger.Logger
}

// NewApp opens the storages described by cfg, loads the session state and
// wires the adapters, services and backup worker on top of them.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	remote, err := adapter.NewDriveRemoteStore(cfg.Adapter, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	generator, err := adapter.NewHTTPGeneratorAdapter(cfg.Adapter, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create generator adapter: %w", err)
	}

	app, err := newApp(ctx, cfg, storages, remote, generator, log)
	if err != nil {
		storages.Close()
		return nil, err
	}

	return app, nil
}

func newApp(
	ctx context.Context,
	cfg *config.StructuredConfig,
	storages *store.ClientStorages,
	remote adapter.RemoteStore,
	generator adapter.GeneratorAdapter,
	log *logger.Logger,
) (*App, error) {
	if err := storages.Session.Load(ctx); err != nil {
		return nil, fmt.Errorf("load session state: %w", err)
	}

	services := service.NewClientServices(storages, remote, generator, cfg.App, log)
	backup := workers.NewBackupWorker(
		services.TransferService,
		services.PreferenceService,
		remote,
		cfg.Workers.BackupInterval,
		log,
	)

	return &App{
		storages:  storages,
		remote:    remote,
		services:  services,
		workers:   workers.NewWorkers(backup),
		noticeTTL: cfg.App.NoticeTTL,
		now:       time.Now,
		logger:    log.WithComponent("app"),
	}, nil
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

func (a *App) Bootstrap(ctx context.Context) (models.Deck, error) {
	deck, err := a.services.DeckService.Bootstrap(ctx)
	if err != nil {
		return deck, fmt.Errorf("bootstrap session: %w", err)
	}
	return deck, nil
}

// SignedIn reports whether a remote credential is present.
func (a *App) SignedIn() bool {
	return a.remote.HasCredential()
}

// SetStorageType switches the storage backend. The remote backend is
// refused with ErrSignInRequired while no credential is present.
func (a *App) SetStorageType(ctx context.Context, storageType models.StorageType) error {
	if storageType == models.StorageRemote && !a.remote.HasCredential() {
		return ErrSignInRequired
	}
	return a.services.PreferenceService.SetStorageType(ctx, storageType)
}

// Notice reports the outcome of an operation: a failure notice for a
// non-nil err, otherwise a success notice carrying success.
func (a *App) Notice(err error, success string) models.Notice {
	if err != nil {
		return models.NewNotice(models.NoticeFailure, tui.HumanizeError(err), a.now(), a.noticeTTL)
	}
	return models.NewNotice(models.NoticeSuccess, success, a.now(), a.noticeTTL)
}

// Watch starts the background workers and blocks until ctx is done.
func (a *App) Watch(ctx context.Context) error {
	a.logger.Info().
		Str("func", "App.Watch").
		Msg("background workers started")

	a.workers.Start(ctx)
	<-ctx.Done()
	a.workers.Stop()

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) Close() error {
	a.workers.Stop()
	return a.storages.Close()
}
