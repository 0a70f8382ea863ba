// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by slot backends to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSlotNotFound is returned by [Slot.Read] when nothing was ever written
	// under the requested key.
	ErrSlotNotFound = errors.New("storage slot not found")

	// ErrSlotFileCorrupted is returned by the file backend when the slot file
	// exists but does not hold a JSON object of strings.
	ErrSlotFileCorrupted = errors.New("storage slot file is corrupted")

	// ErrSlotUnreadable is returned by [MemoStore.Persist] after the slot
	// could not be read, so saving would overwrite memos it never loaded.
	ErrSlotUnreadable = errors.New("storage slot could not be read")

	// ErrUnknownBackend is returned by [NewClientStorages] for a backend name
	// it cannot construct.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors. These are wrapped by the SQLite slot
// when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
