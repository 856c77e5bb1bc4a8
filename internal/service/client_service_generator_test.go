// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-deck-keeper/internal/adapter"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/MKhiriev/go-deck-keeper/internal/mock"
	"github.com/MKhiriev/go-deck-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientGeneratorService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mock.NewMockGeneratorAdapter(ctrl)
	svc := NewClientGeneratorService(gen, logger.Nop())

	gen.EXPECT().Generate(gomock.Any(), "photosynthesis").Return([]models.Flashcard{
		{Front: "What is made?", Back: "Glucose"},
		{Front: "", Back: ""},
		{Front: "Where?", Back: "Chloroplast"},
	}, nil)

	cards, err := svc.Generate(context.Background(), "photosynthesis")
	require.NoError(t, err)
	assert.Equal(t, []models.Flashcard{
		{Front: "What is made?", Back: "Glucose"},
		{Front: "Where?", Back: "Chloroplast"},
	}, cards)
}

func TestClientGeneratorService_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		setup   func(gen *mock.MockGeneratorAdapter)
		wantErr error
	}{
		{
			name:    "blank input skips the request",
			input:   " \n ",
			setup:   func(*mock.MockGeneratorAdapter) {},
			wantErr: ErrEmptyInputText,
		},
		{
			name:  "adapter failure",
			input: "text",
			setup: func(gen *mock.MockGeneratorAdapter) {
				gen.EXPECT().Generate(gomock.Any(), "text").Return(nil, adapter.ErrServiceUnavailable)
			},
			wantErr: ErrGenerationFailed,
		},
		{
			name:  "only blank cards",
			input: "text",
			setup: func(gen *mock.MockGeneratorAdapter) {
				gen.EXPECT().Generate(gomock.Any(), "text").Return([]models.Flashcard{{}}, nil)
			},
			wantErr: ErrNoCardsGenerated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gen := mock.NewMockGeneratorAdapter(ctrl)
			tt.setup(gen)

			_, err := NewClientGeneratorService(gen, logger.Nop()).Generate(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientGeneratorService_Generate_KeepsAdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mock.NewMockGeneratorAdapter(ctrl)
	gen.EXPECT().Generate(gomock.Any(), "x").Return(nil, adapter.ErrUnauthorized)

	_, err := NewClientGeneratorService(gen, logger.Nop()).Generate(context.Background(), "x")
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
}
