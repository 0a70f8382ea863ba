// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-memo-keeper/internal/service"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
	"github.com/MKhiriev/go-memo-keeper/internal/validators"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "empty memo", err: fmt.Errorf("%w: %w", service.ErrInvalidMemo, validators.ErrEmptyMemo), want: "Enter a title or some content."},
		{name: "unreadable slot", err: fmt.Errorf("persist memos: %w: %w", store.ErrSlotUnreadable, errors.New("database is locked")), want: "Saved memos could not be read, so changes are not written. Restart to retry."},
		{name: "not an image", err: service.ErrNotAnImage, want: "That file is not an image."},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
