// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExporter_Write_NormalisesExtension(t *testing.T) {
	for _, name := range []string{"notes", "notes.json", "notes.txt"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			exp := NewFileExporter(dir, logger.Nop())

			require.NoError(t, exp.Write(context.Background(), name, map[string]int{"a": 1}))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "notes.json", entries[0].Name())
		})
	}
}

func TestFileExporter_Write_PrettyJSON(t *testing.T) {
	dir := t.TempDir()
	exp := NewFileExporter(dir, logger.Nop())

	require.NoError(t, exp.Write(context.Background(), "deck", map[string]string{"name": "Quiz"}))

	data, err := os.ReadFile(filepath.Join(dir, "deck.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"Quiz\"\n}\n", string(data))
}

func TestFileExporter_Write_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")
	exp := NewFileExporter(dir, logger.Nop())

	require.NoError(t, exp.Write(context.Background(), "a", 1))
	assert.FileExists(t, filepath.Join(dir, "a.json"))
}

func TestFileExporter_Location_StaysInDirectory(t *testing.T) {
	dir := t.TempDir()
	exp := NewFileExporter(dir, logger.Nop())

	assert.Equal(t, filepath.Join(dir, "passwd.json"), exp.Location("../../etc/passwd"))
}

func TestFileExporter_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "import.json")
	require.NoError(t, os.WriteFile(path, []byte(`[["a","b"]]`), 0o600))

	exp := NewFileExporter(dir, logger.Nop())

	data, err := exp.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	_, err = exp.ReadFile(context.Background(), filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFileExporter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exp := NewFileExporter(t.TempDir(), logger.Nop())
	assert.ErrorIs(t, exp.Write(ctx, "a", 1), context.Canceled)
}
