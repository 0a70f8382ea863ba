// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const slotsTable = "storage_slots"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildReadSlotQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(slotsTable).
		Where(sq.Eq{"slot_key": key}).
		ToSql()
}

func buildWriteSlotQuery(key, value string, now time.Time) (string, []any, error) {
	return sqlite.
		Insert(slotsTable).
		Columns("slot_key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(slot_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
