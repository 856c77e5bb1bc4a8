// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-keeper/internal/tui"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "List, inspect and edit decks",
}

var deckListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all decks",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc := app.Services().DeckService

		activeID := ""
		if active, err := svc.Active(ctx); err == nil {
			activeID = active.ID
		}

		printView(cmd, tui.RenderDeckList(svc.List(ctx), activeID))
		return nil
	},
}

var deckShowCmd = &cobra.Command{
	Use:   "show [deck-id]",
	Short: "Show a deck and its cards (the active deck by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := resolveDeck(cmd, args)
		if err != nil {
			return report(cmd, err, "")
		}

		printView(cmd, tui.RenderDeck(deck))
		return nil
	},
}

var deckSelectCmd = &cobra.Command{
	Use:   "select <deck-id>",
	Short: "Make a deck the active deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := app.Services().DeckService.Select(cmd.Context(), args[0])
		return report(cmd, err, "Active deck changed")
	},
}

func init() {
	deckCmd.AddCommand(deckListCmd, deckShowCmd, deckSelectCmd)
	rootCmd.AddCommand(deckCmd)
}
