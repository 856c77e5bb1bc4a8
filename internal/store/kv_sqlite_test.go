// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-deck-keeper/internal/config"
	"github.com/MKhiriev/go-deck-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKVStore(t *testing.T) (KeyValueStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	kv := NewSQLiteKeyValueStore(&DB{DB: db, logger: l}, l)
	return kv, mock, db
}

// ── Write ────────────────────────────────────────────────────────────────────

func TestSQLiteKV_Write_Success(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("storagePreference", `"google"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := kv.Write(context.Background(), "storagePreference", "google")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Write_ExecError(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WillReturnError(errors.New("disk I/O error"))

	err := kv.Write(context.Background(), "k", 1)
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "failed to execute statement")
	assert.Contains(t, err.Error(), "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Write_UnencodablePayload(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	err := kv.Write(context.Background(), "k", make(chan int))
	require.ErrorIs(t, err, ErrEncodingPayload)
	// nothing reaches the database
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Write_EmptyKey(t *testing.T) {
	kv, _, db := newTestKVStore(t)
	defer db.Close()

	require.ErrorIs(t, kv.Write(context.Background(), "", 1), ErrEmptyKey)
}

// ── Read ─────────────────────────────────────────────────────────────────────

func TestSQLiteKV_Read(t *testing.T) {
	tests := []struct {
		name   string
		rows   *sqlmock.Rows
		err    error
		wantOK bool
		want   string
	}{
		{
			name:   "found",
			rows:   sqlmock.NewRows([]string{"value"}).AddRow(`{"a":1}`),
			wantOK: true,
			want:   `{"a":1}`,
		},
		{
			name: "missing key",
			rows: sqlmock.NewRows([]string{"value"}),
		},
		{
			name: "corrupt json is absent",
			rows: sqlmock.NewRows([]string{"value"}).AddRow(`{"a":`),
		},
		{
			name: "query error is absent",
			err:  errors.New("database is locked"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, mock, db := newTestKVStore(t)
			defer db.Close()

			exp := mock.ExpectQuery("SELECT value FROM kv_store").WithArgs("k")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			raw, ok := kv.Read(context.Background(), "k")
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.JSONEq(t, tt.want, string(raw))
			} else {
				assert.Nil(t, raw)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── Delete / Keys ────────────────────────────────────────────────────────────

func TestSQLiteKV_Delete(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs("activeDeckId").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, kv.Delete(context.Background(), "activeDeckId"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Keys(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT key FROM kv_store").
		WithArgs(5, "deck_").
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("deck_a").AddRow("deck_b"))

	keys, err := kv.Keys(context.Background(), "deck_")
	require.NoError(t, err)
	assert.Equal(t, []string{"deck_a", "deck_b"}, keys)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Keys_QueryError(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT key FROM kv_store").WillReturnError(errors.New("boom"))

	keys, err := kv.Keys(context.Background(), "deck_")
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.Nil(t, keys)
}

// ── real SQLite ──────────────────────────────────────────────────────────────

func TestSQLiteKV_InMemoryDatabase(t *testing.T) {
	ctx := context.Background()
	l := logger.Nop()

	db, err := NewConnectSQLite(ctx, config.DB{DSN: ":memory:"}, l)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	kv := NewSQLiteKeyValueStore(db, l)

	require.NoError(t, kv.Write(ctx, "deck_1", map[string]string{"id": "1"}))
	require.NoError(t, kv.Write(ctx, "deck_1", map[string]string{"id": "1", "name": "x"}))
	require.NoError(t, kv.Write(ctx, "deckIndex", []string{}))
	require.NoError(t, kv.Write(ctx, "deckX", 1))

	raw, ok := kv.Read(ctx, "deck_1")
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"1","name":"x"}`, string(raw))

	// "_" must not act as a wildcard: deckX and deckIndex are not deck records
	keys, err := kv.Keys(ctx, "deck_")
	require.NoError(t, err)
	assert.Equal(t, []string{"deck_1"}, keys)

	require.NoError(t, kv.Delete(ctx, "deck_1"))
	_, ok = kv.Read(ctx, "deck_1")
	assert.False(t, ok)
}

func TestSQLiteKV_Keys_NonASCIIKey(t *testing.T) {
	ctx := context.Background()
	l := logger.Nop()

	db, err := NewConnectSQLite(ctx, config.DB{DSN: ":memory:"}, l)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	kv := NewSQLiteKeyValueStore(db, l)
	require.NoError(t, kv.Write(ctx, "deck_ñandú", map[string]string{"id": "ñandú"}))
	require.NoError(t, kv.Write(ctx, "deck_plain", map[string]string{"id": "plain"}))

	keys, err := kv.Keys(ctx, "deck_ñandú")
	require.NoError(t, err)
	assert.Equal(t, []string{"deck_ñandú"}, keys)

	keys, err = kv.Keys(ctx, "deck_")
	require.NoError(t, err)
	assert.Equal(t, []string{"deck_plain", "deck_ñandú"}, keys)
}
