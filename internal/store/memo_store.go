// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/models"
)

// DefaultMemosKey is the slot key the memo list is stored under.
const DefaultMemosKey = "note_editor_with_images_v1"

// MemoStore owns the canonical memo list and its durable representation in a
// [Slot]. Mutations are in memory only until [MemoStore.Persist] is called.
//
// MemoStore is not safe for concurrent use.
type MemoStore struct {
	slot   Slot
	key    string
	logger *logger.Logger

	memos []models.Memo
	// readErr holds the last failed read. Persist refuses to run while it is
	// set, so an unreadable slot is never overwritten with a partial list.
	readErr error
}

// NewMemoStore returns an empty store over slot. An empty key selects
// [DefaultMemosKey].
func NewMemoStore(slot Slot, key string, log *logger.Logger) *MemoStore {
	if key == "" {
		key = DefaultMemosKey
	}
	return &MemoStore{
		slot:   slot,
		key:    key,
		logger: log,
		memos:  []models.Memo{},
	}
}

// Key returns the slot key the store reads and writes.
func (s *MemoStore) Key() string {
	return s.key
}

// Load replaces the in-memory list with the persisted one and returns a copy
// of it. An absent, empty or malformed slot loads as an empty list.
//
// When the slot cannot be read at all the list is empty too, but
// [MemoStore.Persist] fails with [ErrSlotUnreadable] until a later Load
// succeeds.
func (s *MemoStore) Load(ctx context.Context) []models.Memo {
	log := logger.FromContextOr(ctx, s.logger)

	value, err := s.slot.Read(ctx, s.key)
	switch {
	case errors.Is(err, ErrSlotNotFound):
		log.Debug().Str("func", "MemoStore.Load").Str("key", s.key).Msg("slot is empty, starting with no memos")
		s.memos, s.readErr = []models.Memo{}, nil
		return s.List()
	case errors.Is(err, ErrSlotFileCorrupted):
		log.Warn().Err(err).Str("func", "MemoStore.Load").Str("key", s.key).Msg("slot file holds malformed data, starting with no memos")
		s.memos, s.readErr = []models.Memo{}, nil
		return s.List()
	case err != nil:
		log.Error().Err(err).Str("func", "MemoStore.Load").Str("key", s.key).Msg("failed to read slot, saving is disabled")
		s.memos, s.readErr = []models.Memo{}, err
		return s.List()
	}
	s.readErr = nil

	memos, stats, err := decodeMemos(value)
	if err != nil {
		log.Warn().Err(err).Str("func", "MemoStore.Load").Str("key", s.key).Msg("slot holds malformed data, starting with no memos")
		s.memos = []models.Memo{}
		return s.List()
	}
	if stats.skipped > 0 || stats.reassigned > 0 {
		log.Warn().
			Str("func", "MemoStore.Load").
			Int("skipped", stats.skipped).
			Int("reassigned", stats.reassigned).
			Msg("repaired memo records")
	}

	s.memos = memos
	log.Debug().Str("func", "MemoStore.Load").Int("count", len(memos)).Msg("memos loaded")
	return s.List()
}

// Persist writes the full list to the slot, overwriting the prior value.
func (s *MemoStore) Persist(ctx context.Context) error {
	log := logger.FromContextOr(ctx, s.logger)

	if s.readErr != nil {
		log.Error().Err(s.readErr).Str("func", "MemoStore.Persist").Str("key", s.key).Msg("refusing to overwrite unreadable slot")
		return fmt.Errorf("persist memos: %w: %w", ErrSlotUnreadable, s.readErr)
	}

	value, err := encodeMemos(s.memos)
	if err != nil {
		log.Err(err).Str("func", "MemoStore.Persist").Msg("failed to encode memos")
		return fmt.Errorf("encode memos: %w", err)
	}

	if err = s.slot.Write(ctx, s.key, value); err != nil {
		log.Err(err).Str("func", "MemoStore.Persist").Str("key", s.key).Msg("failed to persist memos")
		return fmt.Errorf("persist memos: %w", err)
	}

	log.Debug().Str("func", "MemoStore.Persist").Int("count", len(s.memos)).Msg("memos persisted")
	return nil
}

// Upsert replaces the memo with the same id, or appends memo when there is
// none.
func (s *MemoStore) Upsert(memo models.Memo) {
	memo = memo.Clone()
	memo.Normalize()

	if i := s.indexOf(memo.ID); i >= 0 {
		s.memos[i] = memo
		return
	}
	s.memos = append(s.memos, memo)
}

// Remove deletes the memo with the given id and reports whether it was
// present.
func (s *MemoStore) Remove(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.memos = slices.Delete(s.memos, i, i+1)
	return true
}

// FindByID returns a copy of the memo with the given id.
func (s *MemoStore) FindByID(id int64) (models.Memo, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Memo{}, false
	}
	return s.memos[i].Clone(), true
}

// List returns a copy of the memos in storage order.
func (s *MemoStore) List() []models.Memo {
	out := make([]models.Memo, len(s.memos))
	for i, m := range s.memos {
		out[i] = m.Clone()
	}
	return out
}

// MaxID returns the largest id in the list, or 0 when it is empty.
func (s *MemoStore) MaxID() int64 {
	var maxID int64
	for _, m := range s.memos {
		maxID = max(maxID, m.ID)
	}
	return maxID
}

func (s *MemoStore) indexOf(id int64) int {
	return slices.IndexFunc(s.memos, func(m models.Memo) bool { return m.ID == id })
}
