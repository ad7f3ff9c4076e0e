// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Tables of the key/value schema created by migrations/00001_create_kv_tables.sql.
const (
	preferencesTable = "preferences"
	secretsTable     = "secrets"
	secretsMetaTable = "secrets_meta"
)

const upsertSuffix = "ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

// sqlite uses ? placeholders
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectValue(table, name string) (string, []any, error) {
	return queryBuilder.
		Select("value").
		From(table).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildUpsertValue(table, name, value string, at time.Time) (string, []any, error) {
	return queryBuilder.
		Insert(table).
		Columns("name", "value", "updated_at").
		Values(name, value, at.UTC()).
		Suffix(upsertSuffix).
		ToSql()
}

func buildDeleteValue(table, name string) (string, []any, error) {
	return queryBuilder.
		Delete(table).
		Where(sq.Eq{"name": name}).
		ToSql()
}
