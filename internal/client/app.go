// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/query"
	"github.com/MKhiriev/go-memo-keeper/internal/service"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
	"github.com/MKhiriev/go-memo-keeper/internal/tui"
	"github.com/MKhiriev/go-memo-keeper/internal/validators"
	"github.com/MKhiriev/go-memo-keeper/models"
)

type App struct {
	storages *store.ClientStorages
	session  *service.Session
	ui       UI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens storage, loads the memo session and builds the terminal UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	session := service.NewSession(ctx, storages.Memos, validators.NewMemoValidator(), log,
		service.WithEngine(query.NewEngine(cfg.UI.SearchCacheSize)))

	ui, err := tui.New(session, service.NewImageIngestor(cfg.UI.MaxImageBytes, log), tui.Options{
		Theme:     cfg.UI.Theme,
		BuildInfo: info,
	}, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{storages: storages, session: session, ui: ui, logger: log}, nil
}

// Run shows the UI and releases storage when it exits.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("func", "App.Run").Msg("starting ui")

	runErr := a.ui.Run(ctx)
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to close storages")
	}
	if runErr != nil {
		return fmt.Errorf("ui: %w", runErr)
	}

	a.logger.Info().Str("func", "App.Run").Msg("ui closed")
	return nil
}
