// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "key"
	kvValueColumn = "value"
	kvUpdatedAt   = "updated_at"
)

// SQLite takes "?" placeholders.
var kvBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return kvBuilder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

// buildUpsertValueQuery inserts key or replaces the value of an existing
// row in one statement.
func buildUpsertValueQuery(key string, value string) (string, []any, error) {
	return kvBuilder.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvUpdatedAt + " = excluded." + kvUpdatedAt).
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return kvBuilder.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

// buildKeysQuery lists keys with the given prefix. LIKE is avoided because
// "_" is a wildcard there and deck keys contain it. substr counts
// characters, not bytes.
func buildKeysQuery(prefix string) (string, []any, error) {
	q := kvBuilder.
		Select(kvKeyColumn).
		From(kvTable).
		OrderBy(kvKeyColumn)

	if prefix != "" {
		q = q.Where(sq.Expr("substr("+kvKeyColumn+", 1, ?) = ?", utf8.RuneCountInString(prefix), prefix))
	}

	return q.ToSql()
}
