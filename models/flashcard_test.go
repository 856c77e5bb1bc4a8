// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcard(t *testing.T) {
	tests := []struct {
		name    string
		front   string
		back    string
		wantErr error
	}{
		{name: "both sides", front: "femur", back: "leg bone"},
		{name: "front only", front: "femur"},
		{name: "back only", back: "leg bone"},
		{name: "both empty", wantErr: ErrEmptyFlashcard},
		{name: "whitespace only", front: "  ", back: "\t", wantErr: ErrEmptyFlashcard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := NewFlashcard(tt.front, tt.back)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Flashcard{Front: tt.front, Back: tt.back}, card)
		})
	}
}

func TestFlashcard_JSONIsPair(t *testing.T) {
	b, err := json.Marshal([]Flashcard{{Front: "a", Back: "b"}, {Front: "c", Back: ""}})
	require.NoError(t, err)
	assert.JSONEq(t, `[["a","b"],["c",""]]`, string(b))
}

func TestFlashcard_UnmarshalRejectsWrongShape(t *testing.T) {
	for _, raw := range []string{`["only"]`, `["a","b","c"]`, `{"front":"a"}`, `[1,2]`} {
		t.Run(raw, func(t *testing.T) {
			var card Flashcard
			err := json.Unmarshal([]byte(raw), &card)
			require.ErrorIs(t, err, ErrInvalidFlashcard)
		})
	}
}
