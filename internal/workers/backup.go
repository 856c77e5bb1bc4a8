// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/service"
	"github.com/MKhiriev/go-deck-keeper/models"
)

type backupWorker struct {
	transfer    service.ClientTransferService
	preferences service.ClientPreferenceService
	credential  CredentialChecker
	interval    time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBackupWorker creates a worker that exports every deck to the remote
// store each interval while the remote backend is selected and a credential
// is present. A zero or negative interval disables it: Start does nothing.
func NewBackupWorker(
	transfer service.ClientTransferService,
	preferences service.ClientPreferenceService,
	credential CredentialChecker,
	interval time.Duration,
	logger *logger.Logger,
) Worker {
	return &backupWorker{
		transfer:    transfer,
		preferences: preferences,
		credential:  credential,
		interval:    interval,
		logger:      logger.WithComponent("backup_worker"),
	}
}

// Start stops a previous run, if any, and launches the ticker goroutine.
func (w *backupWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Debug().
			Str("func", "backupWorker.Start").
			Msg("backup interval is zero, worker disabled")
		return
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.runOnce(jobCtx)
			}
		}
	}()
}

func (w *backupWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// runOnce performs a single backup tick and reports whether an export was
// attempted.
func (w *backupWorker) runOnce(ctx context.Context) bool {
	if w.preferences.StorageType() != models.StorageRemote || !w.credential.HasCredential() {
		return false
	}

	written, err := w.transfer.ExportAll(ctx)
	switch {
	case errors.Is(err, service.ErrNothingToExport):
		w.logger.Debug().
			Str("func", "backupWorker.runOnce").
			Msg("no decks to back up")
	case err != nil:
		w.logger.Err(err).
			Str("func", "backupWorker.runOnce").
			Int("written", written).
			Msg("remote backup finished with errors")
	default:
		w.logger.Info().
			Str("func", "backupWorker.runOnce").
			Int("written", written).
			Msg("remote backup done")
	}

	return true
}
