// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name derived from the `env` and
// `envPrefix` tags, so the database path is DECKKEEPER_STORAGE_DB_DSN. A
// .env file loaded by the builder uses the same names.
const EnvPrefix = "DECKKEEPER_"

// parseEnv fills cfg from DECKKEEPER_* variables. Unset variables leave
// their fields zero so lower layers survive the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
