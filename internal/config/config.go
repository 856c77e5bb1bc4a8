// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-deck-keeper application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
//
// Every variable name is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// App holds application-level settings such as the starter deck name
	// and how long status notices stay visible.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backends: the
	// key-value database and the directory exported deck files land in.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds addresses and credentials of the remote collaborators:
	// the object store and the flashcard generation service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via DECKKEEPER_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultDeckName is the name of the starter deck created when a session
	// starts with no decks at all.
	// Env: DECKKEEPER_APP_DEFAULT_DECK_NAME
	DefaultDeckName string `env:"DEFAULT_DECK_NAME"`

	// NoticeTTL is how long a status notice stays visible (e.g. "3s").
	// Env: DECKKEEPER_APP_NOTICE_TTL
	NoticeTTL time.Duration `env:"NOTICE_TTL"`

	// LogFile is where client log entries are appended. Empty means a
	// "logs" file next to the executable.
	// Env: DECKKEEPER_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	// DB holds the key-value database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file export settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite key-value database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "/home/me/.config/deckkeeper/decks.db"). ":memory:" keeps all
	// data for the lifetime of the process only.
	// Env: DECKKEEPER_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds settings for the file export backend.
type Files struct {
	// ExportDir is the directory exported deck files are written to.
	// Env: DECKKEEPER_STORAGE_FILES_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`
}

// Adapter holds configuration for the remote integrations.
type Adapter struct {
	// DriveAddress is the base URL of the remote object store API
	// (e.g. "https://www.googleapis.com").
	// Env: DECKKEEPER_ADAPTER_DRIVE_ADDRESS
	DriveAddress string `env:"DRIVE_ADDRESS"`

	// GeneratorAddress is the base URL of the flashcard generation service
	// (e.g. "http://localhost:8000").
	// Env: DECKKEEPER_ADAPTER_GENERATOR_ADDRESS
	GeneratorAddress string `env:"GENERATOR_ADDRESS"`

	// RequestTimeout bounds a single outbound request. Zero leaves the
	// transport default in place.
	// Env: DECKKEEPER_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AccessToken is the opaque bearer credential for the remote object
	// store, issued by the external sign-in flow. Empty means signed out.
	// Env: DECKKEEPER_ADAPTER_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BackupInterval is how often decks are pushed to the remote store while
	// it is the selected backend. Zero disables the backup worker.
	// Env: DECKKEEPER_WORKERS_BACKUP_INTERVAL
	BackupInterval time.Duration `env:"BACKUP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. .env file and environment variables
//  3. Command-line flags (flags may be nil)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
