// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package main is the entry point for the deckkeeper CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-keeper/internal/client"
	"github.com/MKhiriev/go-deck-keeper/internal/config"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	configFlags *config.Flags
	app         *client.App
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deckkeeper",
	Short: "deckkeeper - flashcard decks kept locally, in files or on Google Drive",
	Long: `deckkeeper manages named flashcard decks.

Decks live in a local key-value database. They can be exported to JSON
files or to Google Drive, imported back from either, and extended with
cards produced by the flashcard generation service.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: openApp,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("deckkeeper {{.Version}}\n")

	configFlags = config.RegisterFlags(rootCmd.PersistentFlags())
}

// openApp loads the configuration, opens the storages and runs the session
// start policy before any command runs.
func openApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(configFlags)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderNotice(failureNotice(err), time.Now()))
		return err
	}

	log := logger.NewClientLogger("deckkeeper", cfg.App.LogFile)
	app, err = client.NewApp(cmd.Context(), cfg, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderNotice(failureNotice(err), time.Now()))
		return err
	}

	if _, err = app.Bootstrap(cmd.Context()); err != nil {
		return report(cmd, err, "")
	}

	return nil
}

func closeApp() error {
	if app == nil {
		return nil
	}
	err := app.Close()
	app = nil
	return err
}

func versionString() string {
	version, date, commit := buildVersion, buildDate, buildCommit
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return fmt.Sprintf("%s (built %s, commit %s)", version, date, commit)
}
