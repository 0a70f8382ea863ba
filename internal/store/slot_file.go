// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
)

// fileSlot keeps all slots in one JSON object file: {"key": "value", ...}.
// The file is re-read on every access so a value written by another process
// is picked up; concurrent writers resolve as last-write-wins.
type fileSlot struct {
	path     string
	inMemory bool
	logger   *logger.Logger

	mu    sync.Mutex
	items map[string]string
}

// NewFileSlot returns a [Slot] stored in the JSON file at path. The path
// ":memory:" keeps values in process only.
func NewFileSlot(path string, log *logger.Logger) Slot {
	return &fileSlot{
		path:     path,
		inMemory: path == "" || path == memoryDSN,
		logger:   log,
		items:    make(map[string]string),
	}
}

func (s *fileSlot) Read(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "fileSlot.Read").
			Str("path", s.path).
			Msg("failed to load slot file")
		return "", err
	}

	value, ok := items[key]
	if !ok {
		return "", ErrSlotNotFound
	}
	return value, nil
}

func (s *fileSlot) Write(ctx context.Context, key, value string) error {
	log := logger.FromContextOr(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if errors.Is(err, ErrSlotFileCorrupted) {
		log.Warn().Str("func", "fileSlot.Write").Str("path", s.path).Msg("overwriting corrupted slot file")
		items = make(map[string]string)
	} else if err != nil {
		return err
	}

	items[key] = value
	if err = s.persist(items); err != nil {
		log.Err(err).Str("func", "fileSlot.Write").Str("path", s.path).Msg("failed to write slot file")
		return err
	}

	return nil
}

func (s *fileSlot) load() (map[string]string, error) {
	if s.inMemory {
		return s.items, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read slot file: %w", err)
	}

	items := make(map[string]string)
	if len(data) == 0 {
		return items, nil
	}
	if err = json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSlotFileCorrupted, err)
	}
	if items == nil {
		items = make(map[string]string)
	}

	return items, nil
}

// persist writes items to a temp file in the same directory and renames it
// over the slot file, so a crash never leaves a half-written file behind.
func (s *fileSlot) persist(items map[string]string) error {
	if s.inMemory {
		s.items = items
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slot file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp slot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp slot file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("chmod temp slot file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}

	return nil
}
