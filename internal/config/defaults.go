package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultDeckName names the starter deck of an empty store.
	DefaultDeckName = "My First Deck"
	// DefaultNoticeTTL is how long status notices stay visible.
	DefaultNoticeTTL = 3 * time.Second
	// DefaultDriveAddress is the Google APIs host.
	DefaultDriveAddress = "https://www.googleapis.com"
	// DefaultGeneratorAddress is where the generation service listens in
	// development.
	DefaultGeneratorAddress = "http://localhost:8000"
	// DefaultBackupInterval is how often the backup worker runs.
	DefaultBackupInterval = 5 * time.Minute
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultDeckName: DefaultDeckName,
			NoticeTTL:       DefaultNoticeTTL,
		},
		Storage: Storage{
			DB:    DB{DSN: filepath.Join(defaultDataDir(), "decks.db")},
			Files: Files{ExportDir: defaultExportDir()},
		},
		Adapter: Adapter{
			DriveAddress:     DefaultDriveAddress,
			GeneratorAddress: DefaultGeneratorAddress,
		},
		Workers: Workers{BackupInterval: DefaultBackupInterval},
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "deckkeeper")
}

func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	downloads := filepath.Join(home, "Downloads")
	if info, err := os.Stat(downloads); err == nil && info.IsDir() {
		return downloads
	}
	return "."
}
