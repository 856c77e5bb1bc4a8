// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
