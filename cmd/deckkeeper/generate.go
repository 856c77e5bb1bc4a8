// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <deck-id> <text-file>",
	Short: "Generate cards from a text file and append them to a deck",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		services := app.Services()

		deck, err := services.DeckService.Get(ctx, args[0])
		if err != nil {
			return report(cmd, err, "")
		}

		text, err := os.ReadFile(args[1])
		if err != nil {
			return report(cmd, fmt.Errorf("read text file: %w", err), "")
		}

		cards, err := services.GeneratorService.Generate(ctx, string(text))
		if err != nil {
			return report(cmd, err, "")
		}

		deck, err = services.TransferService.MergeGeneratedCards(ctx, deck, cards)
		return report(cmd, err, fmt.Sprintf("Added %d generated cards to %q", len(cards), deck.Name))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
