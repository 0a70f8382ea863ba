// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/query"
	"github.com/MKhiriev/go-memo-keeper/models"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func testConfig(t *testing.T, backend string) *config.ClientConfig {
	t.Helper()
	dir := t.TempDir()
	return &config.ClientConfig{
		Storage: config.ClientStorage{
			Backend: backend,
			SlotKey: config.DefaultSlotKey,
			DB:      config.ClientDB{DSN: filepath.Join(dir, "memos.db")},
			Files:   config.ClientFiles{SlotFile: filepath.Join(dir, "memos.json")},
		},
		UI: config.ClientUI{Theme: config.ThemeDark, SearchCacheSize: 8, MaxImageBytes: 1024},
	}
}

func TestNewApp_Backends(t *testing.T) {
	for _, backend := range []string{config.BackendSQLite, config.BackendFile} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			app, err := NewApp(ctx, testConfig(t, backend), models.NewAppBuildInfo("v1", "", ""), logger.Nop())
			require.NoError(t, err)

			_, err = app.session.Save(ctx, models.Draft{Title: "hello"})
			require.NoError(t, err)
			assert.Len(t, app.session.View(query.Query{}).Memos, 1)

			ui := &stubUI{}
			app.ui = ui
			require.NoError(t, app.Run(ctx))
			assert.Equal(t, 1, ui.calls)
		})
	}
}

func TestNewApp_UnknownBackend(t *testing.T) {
	_, err := NewApp(context.Background(), testConfig(t, "cloud"), models.AppBuildInfo{}, logger.Nop())
	require.Error(t, err)
}

func TestApp_Run_UIError(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t, config.BackendFile), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	uiErr := errors.New("terminal gone")
	app.ui = &stubUI{err: uiErr}

	err = app.Run(context.Background())
	require.ErrorIs(t, err, uiErr)
}
