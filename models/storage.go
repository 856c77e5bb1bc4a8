// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// StorageType names one of the interchangeable persistence backends.
type StorageType string

const (
	// StorageLocal is the durable key-value store on this device.
	StorageLocal StorageType = "local"
	// StorageFile exports decks as downloadable JSON files.
	StorageFile StorageType = "file"
	// StorageRemote is the remote object store reached with a bearer token.
	StorageRemote StorageType = "google"
)

// StorageTypes lists every supported backend in display order.
var StorageTypes = []StorageType{StorageLocal, StorageFile, StorageRemote}

// ParseStorageType validates s against the supported backends.
func ParseStorageType(s string) (StorageType, error) {
	t := StorageType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range StorageTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStorageType, s)
}

// String implements fmt.Stringer.
func (t StorageType) String() string {
	return string(t)
}

// Title returns a human readable backend name.
func (t StorageType) Title() string {
	switch t {
	case StorageLocal:
		return "Local Storage"
	case StorageFile:
		return "Local File"
	case StorageRemote:
		return "Google Drive"
	default:
		return string(t)
	}
}

// JSONFileName returns name with exactly one ".json" extension. An explicit
// file name's extension is replaced rather than appended to, so "notes",
// "notes.json" and "notes.txt" all become "notes.json". Names built from
// deck titles go through [DeckFileName] first.
func JSONFileName(name string) string {
	name = strings.TrimSpace(name)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		base = "deck"
	}
	return base + ".json"
}

// DeckFileName turns a deck name into a file name. Whitespace runs and path
// separators become a single underscore and ".json" is appended, so dots
// inside the name survive: "Chapter 1.5" is "Chapter_1.5.json".
func DeckFileName(deckName string) string {
	base := strings.Join(strings.FieldsFunc(deckName, isFileNameBreak), "_")
	base = strings.TrimSuffix(base, ".json")
	if strings.Trim(base, ".") == "" {
		base = "deck"
	}
	return base + ".json"
}

// WithFileSuffix inserts suffix before the ".json" extension of a name
// produced by [DeckFileName] or [JSONFileName].
func WithFileSuffix(fileName, suffix string) string {
	return strings.TrimSuffix(fileName, ".json") + "_" + suffix + ".json"
}

func isFileNameBreak(r rune) bool {
	return unicode.IsSpace(r) || r == '/' || r == '\\'
}
