// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildReadSlotQuery(t *testing.T) {
	query, args, err := buildReadSlotQuery("memos")
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM storage_slots WHERE slot_key = ?", query)
	require.Len(t, args, 1)
	assert.Equal(t, "memos", args[0])
}

func Test_buildWriteSlotQuery_Upserts(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	query, args, err := buildWriteSlotQuery("memos", "[]", now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into storage_slots"))
	assert.Contains(t, q, "(slot_key,value,updated_at)")
	assert.Contains(t, q, "values (?,?,?)")
	assert.Contains(t, q, "on conflict(slot_key) do update")
	assert.NotContains(t, query, "$1")

	require.Len(t, args, 3)
	assert.Equal(t, "memos", args[0])
	assert.Equal(t, "[]", args[1])
	assert.Equal(t, now.UTC(), args[2])
}
