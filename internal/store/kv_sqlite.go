// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deck-keeper/internal/logger"
)

type sqliteKeyValueStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] persisting JSON text in
// the kv_store table of db.
func NewSQLiteKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqliteKeyValueStore{
		db:     db,
		logger: logger.WithComponent("kv_sqlite"),
	}
}

func (s *sqliteKeyValueStore) Write(ctx context.Context, key string, payload any) error {
	if key == "" {
		return ErrEmptyKey
	}

	value, err := json.Marshal(payload)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Write").
			Str("key", key).
			Msg("failed to encode payload")
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	query, args, err := buildUpsertValueQuery(key, string(value))
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Write").
			Str("key", key).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Write").
			Str("key", key).
			Msg("failed to execute upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Read(ctx context.Context, key string) (json.RawMessage, bool) {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Read").
			Str("key", key).
			Msg("failed to build select query")
		return nil, false
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Read").
			Str("key", key).
			Msg("failed to read value")
		return nil, false
	}

	if !json.Valid([]byte(value)) {
		s.logger.Warn().
			Str("func", "sqliteKeyValueStore.Read").
			Str("key", key).
			Msg("stored value is not valid JSON, treating as missing")
		return nil, false
	}

	return json.RawMessage(value), true
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := buildKeysQuery(prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Keys").
			Str("prefix", prefix).
			Msg("failed to list keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
