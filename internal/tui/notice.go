// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-deck-keeper/models"
)

// RenderNotice renders n in a success or failure box. An expired notice
// renders as the empty string.
func RenderNotice(n models.Notice, now time.Time) string {
	if n.Expired(now) || n.Message == "" {
		return ""
	}

	if n.IsFailure() {
		return failureStyle.Render("✗ " + n.Message)
	}
	return successStyle.Render("✓ " + n.Message)
}
