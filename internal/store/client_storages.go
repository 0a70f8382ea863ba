// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
)

// ClientStorages groups the storage layer handed to the service layer.
type ClientStorages struct {
	// Slot is the raw key-value backend selected by configuration.
	Slot Slot

	// Memos is the memo list stored in Slot.
	Memos *MemoStore

	closer func() error
}

// NewClientStorages initialises the storage layer from cfg:
//  1. For the sqlite backend it opens the database at cfg.DB.DSN and runs
//     pending schema migrations.
//  2. For the file backend it uses the JSON file at cfg.Files.SlotFile.
//  3. It wraps the slot in a [MemoStore] under cfg.SlotKey.
//
// The memo list is not loaded yet; that is the session's job.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	storages := &ClientStorages{closer: func() error { return nil }}

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		storages.Slot = NewSQLiteSlot(db, log)
		storages.closer = db.Close
	case config.BackendFile:
		storages.Slot = NewFileSlot(cfg.Files.SlotFile, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	storages.Memos = NewMemoStore(storages.Slot, cfg.SlotKey, log)
	return storages, nil
}

// Close releases the backend's resources.
func (s *ClientStorages) Close() error {
	return s.closer()
}
