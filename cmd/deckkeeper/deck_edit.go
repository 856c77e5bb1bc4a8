// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-keeper/models"
)

var (
	createDescription string
	createSelect      bool
)

var deckCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty deck",
	Long: `Create an empty deck.

Examples:
  deckkeeper deck create "Spanish verbs"
  deckkeeper deck create Biology --description "Chapter 3" --select`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc := app.Services().DeckService

		deck, err := svc.Create(ctx, args[0], createDescription, nil)
		if err == nil && createSelect {
			err = svc.Select(ctx, deck.ID)
		}
		return report(cmd, err, fmt.Sprintf("Created deck %q (%s)", deck.Name, deck.ID))
	},
}

var deckRenameCmd = &cobra.Command{
	Use:   "rename <deck-id> <name>",
	Short: "Rename a deck",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := app.Services().DeckService.Rename(cmd.Context(), args[0], args[1])
		return report(cmd, err, fmt.Sprintf("Renamed deck to %q", deck.Name))
	},
}

var deckDeleteCmd = &cobra.Command{
	Use:   "delete <deck-id>",
	Short: "Delete a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := app.Services().DeckService.Delete(cmd.Context(), args[0])
		return report(cmd, err, "Deck deleted")
	},
}

var deckAddCardCmd = &cobra.Command{
	Use:   "add-card <deck-id> <front> <back>",
	Short: "Append a card to a deck",
	Long: `Append a card to a deck. One side may be empty, but not both.

Examples:
  deckkeeper deck add-card 0193... "hola" "hello"
  deckkeeper deck add-card 0193... "What is ATP?" ""`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := app.Services().DeckService.AddCard(cmd.Context(), args[0], args[1], args[2])
		return report(cmd, err, fmt.Sprintf("Card added, %d in deck", len(deck.Cards)))
	},
}

var deckRemoveCardCmd = &cobra.Command{
	Use:   "remove-card <deck-id> <index>",
	Short: "Remove the card at index (as shown by deck show)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return report(cmd, fmt.Errorf("invalid card index %q", args[1]), "")
		}

		deck, err := app.Services().DeckService.RemoveCard(cmd.Context(), args[0], index)
		return report(cmd, err, fmt.Sprintf("Card removed, %d left", len(deck.Cards)))
	},
}

func init() {
	deckCreateCmd.Flags().StringVar(&createDescription, "description", "", "deck description")
	deckCreateCmd.Flags().BoolVar(&createSelect, "select", false, "make the new deck active")

	deckCmd.AddCommand(deckCreateCmd, deckRenameCmd, deckDeleteCmd, deckAddCardCmd, deckRemoveCardCmd)
}

// resolveDeck returns the deck named by args[0], or the active deck.
func resolveDeck(cmd *cobra.Command, args []string) (models.Deck, error) {
	svc := app.Services().DeckService
	if len(args) > 0 {
		return svc.Get(cmd.Context(), args[0])
	}
	return svc.Active(cmd.Context())
}
