// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
)

// sqliteSlot keeps every slot as a row of the storage_slots table.
type sqliteSlot struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteSlot returns a [Slot] backed by db. The schema must already be
// migrated.
func NewSQLiteSlot(db *DB, log *logger.Logger) Slot {
	return &sqliteSlot{db: db, logger: log, now: time.Now}
}

func (s *sqliteSlot) Read(ctx context.Context, key string) (string, error) {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildReadSlotQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqliteSlot.Read").Str("key", key).Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSlotNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteSlot.Read").Str("key", key).Msg("failed to read slot")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteSlot) Write(ctx context.Context, key, value string) error {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildWriteSlotQuery(key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "sqliteSlot.Write").Str("key", key).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteSlot.Write").Str("key", key).Msg("failed to write slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "sqliteSlot.Write").Str("key", key).Int("bytes", len(value)).Msg("slot written")
	return nil
}
