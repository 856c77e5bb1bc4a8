// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-keeper/internal/tui"
	"github.com/MKhiriev/go-deck-keeper/models"
)

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Show or change where decks are exported",
}

var storageShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the selected storage backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs := app.Services().PreferenceService
		printView(cmd, tui.RenderStorage(prefs.StorageType(), prefs.FileName(), app.SignedIn()))
		return nil
	},
}

var storageFileName string

var storageSetCmd = &cobra.Command{
	Use:       "set <local|file|google>",
	Short:     "Select the storage backend",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"local", "file", "google"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		storageType, err := models.ParseStorageType(args[0])
		if err != nil {
			return report(cmd, err, "")
		}

		if err = app.SetStorageType(ctx, storageType); err != nil {
			return report(cmd, err, "")
		}

		if cmd.Flags().Changed("file-name") {
			err = app.Services().PreferenceService.SetFileName(ctx, storageFileName)
		}
		return report(cmd, err, fmt.Sprintf("Storage set to %s", storageType.Title()))
	},
}

func init() {
	storageSetCmd.Flags().StringVar(&storageFileName, "file-name", "", "target file name for exports (empty clears it)")

	storageCmd.AddCommand(storageShowCmd, storageSetCmd)
	rootCmd.AddCommand(storageCmd)
}
