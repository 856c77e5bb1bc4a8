// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Rebuild the deck index from the stored decks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := app.Services().DeckService.Repair(cmd.Context())
		return report(cmd, err, fmt.Sprintf("Deck index rebuilt, %d decks", len(index)))
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back decks up to Google Drive every backup interval until interrupted",
	Long: `Run the backup worker in the foreground. While Google Drive is the
selected backend and an access token is configured, every deck is
exported on each tick of --backup-interval. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := app.Watch(cmd.Context())
		return report(cmd, err, "Backup worker stopped")
	},
}

func init() {
	rootCmd.AddCommand(repairCmd, backupCmd)
}
