// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-deck-keeper/internal/adapter"
)

// remoteMessages maps remote service failures to notices. Order matters:
// a failed rename wraps the status error that caused it.
var remoteMessages = []struct {
	err error
	msg string
}{
	{adapter.ErrNoCredential, "Sign in to Google Drive first"},
	{adapter.ErrRenameFailed, "Upload to Google Drive failed, nothing was saved"},
	{adapter.ErrUnauthorized, "Google Drive sign-in expired, sign in again"},
	{adapter.ErrRateLimited, "Too many requests, try again in a minute"},
	{adapter.ErrQuotaExceeded, "Google Drive storage is full"},
	{adapter.ErrForbidden, "Access to the remote file was denied"},
	{adapter.ErrNotFound, "The remote file no longer exists"},
	{adapter.ErrServiceUnavailable, "The remote service is unavailable, try again later"},
}

// HumanizeError turns transport failures into a message a user can act on.
// Other errors are returned as is.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range remoteMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is unavailable or the service cannot be reached"
	}

	return err.Error()
}
