// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end: the memo list with its search and
// tag filter, the editor, and the delete confirmation prompt.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/service"
	"github.com/MKhiriev/go-memo-keeper/models"
)

var ErrNilService = errors.New("tui: memo service is nil")

// Options configures the front end.
type Options struct {
	// Theme is "dark" or "light".
	Theme string

	// BuildInfo is shown on the about page.
	BuildInfo models.AppBuildInfo
}

type TUI struct {
	memos  service.MemoService
	images service.ImageLoader
	opts   Options
	logger *logger.Logger
}

func New(memos service.MemoService, images service.ImageLoader, opts Options, log *logger.Logger) (*TUI, error) {
	if memos == nil {
		return nil, ErrNilService
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{memos: memos, images: images, opts: opts, logger: log}, nil
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(t.logger.WithContext(ctx), t.memos, t.images, t.opts)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
