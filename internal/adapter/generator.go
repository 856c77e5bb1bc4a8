// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-deck-keeper/internal/config"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/utils"
	"github.com/MKhiriev/go-deck-keeper/models"
)

const generateFlashcardsPath = "/generate_flashcards"

type httpGeneratorAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPGeneratorAdapter constructs a [GeneratorAdapter] for the service at
// adapterCfg.GeneratorAddress.
func NewHTTPGeneratorAdapter(adapterCfg config.Adapter, logger *logger.Logger) (GeneratorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.GeneratorAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid generator address: %w", err)
	}

	log := logger.WithComponent("generator")

	return &httpGeneratorAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout).WithLogging(log),
		logger: log,
	}, nil
}

// Generate POSTs {"inputText": ...} to /generate_flashcards and decodes the
// {"flashcards": [[front, back], ...]} reply. There is no retry.
func (g *httpGeneratorAdapter) Generate(ctx context.Context, inputText string) ([]models.Flashcard, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.GenerateRequest{InputText: inputText}).
		Post(generateFlashcardsPath)
	if err != nil {
		return nil, fmt.Errorf("generate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		g.logger.Err(err).
			Str("func", "httpGeneratorAdapter.Generate").
			Int("status", resp.StatusCode()).
			Msg("generation service rejected request")
		return nil, err
	}

	var result models.GenerateResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: decode generate response: %w", ErrMalformedResponse, err)
	}

	return result.Flashcards, nil
}
