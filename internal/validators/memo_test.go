// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-memo-keeper/models"
)

func validDraft() models.Draft {
	return models.Draft{
		Title:       "Trip",
		ContentHTML: "<p>Paris</p>",
		TagsText:    "travel, 2024",
		Date:        "2024-05-01",
		FontSize:    "16px",
	}
}

func TestNewMemoValidator(t *testing.T) {
	require.NotNil(t, NewMemoValidator())
}

func TestMemoValidator_Validate_Dispatch(t *testing.T) {
	v := NewMemoValidator()
	ctx := context.Background()
	d := validDraft()
	m := models.Memo{ID: 1, Title: "x"}

	assert.NoError(t, v.Validate(ctx, d))
	assert.NoError(t, v.Validate(ctx, &d))
	assert.NoError(t, v.Validate(ctx, m))
	assert.NoError(t, v.Validate(ctx, &m))

	assert.ErrorIs(t, v.Validate(ctx, "draft"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.Draft)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

func TestMemoValidator_Draft_Content(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		wantErr error
	}{
		{name: "title only", title: "Trip"},
		{name: "content only", content: "<p>Paris</p>"},
		{name: "plain text content", content: "just text"},
		{name: "both empty", wantErr: ErrEmptyMemo},
		{name: "blank title and markup without text", title: "   ", content: "<p> </p><br>", wantErr: ErrEmptyMemo},
		{name: "image only", content: `<img src="data:image/png;base64,AAAA" alt="image"><br>`, wantErr: ErrEmptyMemo},
		{name: "comment only", content: "<!-- hidden -->", wantErr: ErrEmptyMemo},
	}
	v := NewMemoValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d.Title, d.ContentHTML = tt.title, tt.content

			err := v.Validate(context.Background(), d, FieldContent)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMemoValidator_Draft_Date(t *testing.T) {
	v := NewMemoValidator()
	for _, date := range []string{"", "2024-02-29", "1999-12-31"} {
		d := validDraft()
		d.Date = date
		assert.NoError(t, v.Validate(context.Background(), d, FieldDate), date)
	}
	for _, date := range []string{"2023-02-29", "01/05/2024", "2024-5-1", "tomorrow"} {
		d := validDraft()
		d.Date = date
		assert.ErrorIs(t, v.Validate(context.Background(), d, FieldDate), ErrInvalidDate, date)
	}
}

func TestMemoValidator_Draft_FontSize(t *testing.T) {
	v := NewMemoValidator()
	for _, size := range append([]string{""}, models.FontSizes...) {
		d := validDraft()
		d.FontSize = size
		assert.NoError(t, v.Validate(context.Background(), d, FieldFontSize), size)
	}
	for _, size := range []string{"16", "px", "0px", "16em", "-4px", "1.5px"} {
		d := validDraft()
		d.FontSize = size
		assert.ErrorIs(t, v.Validate(context.Background(), d, FieldFontSize), ErrInvalidFontSize, size)
	}
}

func TestMemoValidator_DefaultFields(t *testing.T) {
	v := NewMemoValidator()

	d := validDraft()
	d.Title, d.ContentHTML = "", ""
	assert.ErrorIs(t, v.Validate(context.Background(), d), ErrEmptyMemo)

	d = validDraft()
	d.Date = "bad"
	assert.ErrorIs(t, v.Validate(context.Background(), d), ErrInvalidDate)

	// scoping to one field skips the others
	assert.NoError(t, v.Validate(context.Background(), d, FieldContent))
}

func TestMemoValidator_Memo_ID(t *testing.T) {
	v := NewMemoValidator()

	assert.NoError(t, v.Validate(context.Background(), models.Memo{ID: 10}, FieldID))
	assert.ErrorIs(t, v.Validate(context.Background(), models.Memo{}, FieldID), ErrInvalidID)
	// drafts carry no id
	assert.NoError(t, v.Validate(context.Background(), validDraft(), FieldID))
}

func TestMemoValidator_UnknownField(t *testing.T) {
	v := NewMemoValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), validDraft(), "color"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Memo{ID: 1}, "color"), ErrUnknownField)
}
