// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-keeper/internal/config"
	"github.com/MKhiriev/go-deck-keeper/internal/tui"
	"github.com/MKhiriev/go-deck-keeper/models"
)

// report prints the notice for the outcome of a command and passes err
// through, so a failed command exits non-zero.
func report(cmd *cobra.Command, err error, success string) error {
	notice := app.Notice(err, success)
	if rendered := tui.RenderNotice(notice, time.Now()); rendered != "" {
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), rendered)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
		}
	}
	return err
}

// failureNotice is used before the app exists.
func failureNotice(err error) models.Notice {
	return models.NewNotice(models.NoticeFailure, tui.HumanizeError(err), time.Now(), config.DefaultNoticeTTL)
}

func printView(cmd *cobra.Command, view string) {
	fmt.Fprint(cmd.OutOrStdout(), view)
}
