// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-keeper/internal/tui"
)

var importSelect bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a deck from a JSON file",
	Long: `Import a deck from a JSON file.

A full deck document replaces the deck with the same id. A bare list of
[front, back] pairs becomes a new deck named after the file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := app.Services().TransferService.ImportFromFile(cmd.Context(), args[0])
		if err == nil && importSelect {
			err = app.Services().DeckService.Select(cmd.Context(), deck.ID)
		}
		return report(cmd, err, fmt.Sprintf("Imported %q with %d cards", deck.Name, len(deck.Cards)))
	},
}

var importRemoteCmd = &cobra.Command{
	Use:   "import-remote <name>",
	Short: "Import a deck stored on Google Drive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := app.Services().TransferService.ImportFromRemote(cmd.Context(), args[0])
		if err == nil && importSelect {
			err = app.Services().DeckService.Select(cmd.Context(), deck.ID)
		}
		return report(cmd, err, fmt.Sprintf("Imported %q with %d cards", deck.Name, len(deck.Cards)))
	},
}

var (
	exportClipboard bool
	exportAll       bool
)

var exportCmd = &cobra.Command{
	Use:   "export [deck-id]",
	Short: "Export a deck to the selected storage backend",
	Long: `Export a deck (the active deck by default) to the selected storage
backend. With --all every deck is exported under its own name. With
--clipboard the deck document is copied to the clipboard instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		transfer := app.Services().TransferService

		if exportAll {
			n, err := transfer.ExportAll(ctx)
			return report(cmd, err, fmt.Sprintf("Exported %d decks", n))
		}

		deck, err := resolveDeck(cmd, args)
		if err != nil {
			return report(cmd, err, "")
		}

		if exportClipboard {
			data, err := json.MarshalIndent(deck, "", "  ")
			if err == nil {
				err = tui.CopyToClipboard(string(data))
			}
			return report(cmd, err, fmt.Sprintf("Copied %q to the clipboard", deck.Name))
		}

		location, err := transfer.ExportDeck(ctx, deck)
		return report(cmd, err, fmt.Sprintf("Exported %q to %s", deck.Name, location))
	},
}

func init() {
	importCmd.Flags().BoolVar(&importSelect, "select", false, "make the imported deck active")
	importRemoteCmd.Flags().BoolVar(&importSelect, "select", false, "make the imported deck active")
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "copy the deck document to the clipboard")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every deck")
	exportCmd.MarkFlagsMutuallyExclusive("clipboard", "all")

	rootCmd.AddCommand(importCmd, importRemoteCmd, exportCmd)
}
