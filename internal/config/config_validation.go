// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.DefaultDeckName) == "" || cfg.App.NoticeTTL < 0 {
		return ErrInvalidAppConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" || strings.TrimSpace(cfg.Storage.Files.ExportDir) == "" {
		return ErrInvalidStorageConfigs
	}

	if err := validateAddress(cfg.Adapter.DriveAddress); err != nil {
		return fmt.Errorf("%w: drive address: %w", ErrInvalidAdapterConfigs, err)
	}
	if err := validateAddress(cfg.Adapter.GeneratorAddress); err != nil {
		return fmt.Errorf("%w: generator address: %w", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.BackupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateAddress(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address %q must include scheme and host", raw)
	}
	return nil
}
