// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-memo-keeper/internal/mock"
	"github.com/MKhiriev/go-memo-keeper/internal/query"
	"github.com/MKhiriev/go-memo-keeper/internal/service"
)

func TestNew_NilService(t *testing.T) {
	_, err := New(nil, nil, Options{}, nil)
	require.ErrorIs(t, err, ErrNilService)
}

func TestNew_AppModelRefreshesOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	memos := mock.NewMockMemoService(ctrl)
	memos.EXPECT().View(query.Query{}).Return(service.View{TagOptions: []string{query.NoTag}})

	ui, err := New(memos, nil, Options{Theme: "light"}, nil)
	require.NoError(t, err)

	m := newAppModel(t.Context(), ui.memos, ui.images, ui.opts)
	assert.Equal(t, themeLight, m.theme.name)
	assert.Equal(t, screenList, m.currentScreen)
	assert.Contains(t, m.View(), "No memos.")
}
