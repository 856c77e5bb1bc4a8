// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/models"
)

// fileExporter is the default implementation of [FileExporter]. It writes
// exported documents into a single directory, the terminal counterpart of
// a browser download folder.
type fileExporter struct {
	dir    string
	logger *logger.Logger
}

// NewFileExporter constructs a [FileExporter] writing into dir.
func NewFileExporter(dir string, logger *logger.Logger) FileExporter {
	return &fileExporter{
		dir:    dir,
		logger: logger.WithComponent("file_export"),
	}
}

// Location returns the path a file named after name is written to. Only
// the base of name is used, so a name can never escape the export
// directory.
func (f *fileExporter) Location(name string) string {
	return filepath.Join(f.dir, models.JSONFileName(filepath.Base(name)))
}

// Write serialises payload as indented JSON and writes it to
// [fileExporter.Location] of name, replacing an existing file.
func (f *fileExporter) Write(ctx context.Context, name string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		f.logger.Err(err).
			Str("func", "fileExporter.Write").
			Str("name", name).
			Msg("failed to encode payload")
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	if err = os.MkdirAll(f.dir, 0o755); err != nil {
		f.logger.Err(err).
			Str("func", "fileExporter.Write").
			Str("dir", f.dir).
			Msg("failed to create export directory")
		return fmt.Errorf("create export dir: %w", err)
	}

	path := f.Location(name)
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		f.logger.Err(err).
			Str("func", "fileExporter.Write").
			Str("path", path).
			Msg("failed to write export file")
		return fmt.Errorf("write export file: %w", err)
	}

	f.logger.Debug().
		Str("func", "fileExporter.Write").
		Str("path", path).
		Msg("exported file")

	return nil
}

func (f *fileExporter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	return data, nil
}
