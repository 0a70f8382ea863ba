// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/richtext"
	"github.com/MKhiriev/go-memo-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldContent requires a non-blank title or some visible body text.
	FieldContent = "content"

	// FieldDate requires an empty date or a YYYY-MM-DD calendar date.
	FieldDate = "date"

	// FieldFontSize requires an empty font size or a "<n>px" token.
	FieldFontSize = "font_size"

	// FieldID requires a positive memo id. Drafts have no id and ignore it.
	FieldID = "id"
)

var fontSizePattern = regexp.MustCompile(`^[1-9][0-9]{0,2}px$`)

// MemoValidator implements Validator for editor drafts and stored memos.
type MemoValidator struct{}

// NewMemoValidator returns a MemoValidator as a Validator.
func NewMemoValidator() Validator {
	return &MemoValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// models.Draft and models.Memo, as values or pointers. With no fields the
// content, date and font size are checked.
func (v *MemoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Draft:
		return v.validateDraft(ctx, value, fields...)
	case *models.Draft:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDraft(ctx, *value, fields...)

	case models.Memo:
		return v.validateMemo(ctx, value, fields...)
	case *models.Memo:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateMemo(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MemoValidator) validateDraft(_ context.Context, d models.Draft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldDate, FieldFontSize}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if !hasContent(d.Title, d.ContentHTML) {
				return ErrEmptyMemo
			}
		case FieldDate:
			if !isValidDate(d.Date) {
				return ErrInvalidDate
			}
		case FieldFontSize:
			if !isValidFontSize(d.FontSize) {
				return ErrInvalidFontSize
			}
		case FieldID:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MemoValidator) validateMemo(_ context.Context, m models.Memo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldDate, FieldFontSize}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if !hasContent(m.Title, m.ContentHTML) {
				return ErrEmptyMemo
			}
		case FieldDate:
			if !isValidDate(m.Date) {
				return ErrInvalidDate
			}
		case FieldFontSize:
			if !isValidFontSize(m.FontSize) {
				return ErrInvalidFontSize
			}
		case FieldID:
			if m.ID <= 0 {
				return ErrInvalidID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// hasContent reports whether a memo has a title or visible body text. An
// image on its own does not count.
func hasContent(title, markup string) bool {
	if strings.TrimSpace(title) != "" {
		return true
	}
	return strings.TrimSpace(richtext.PlainText(markup)) != ""
}

func isValidDate(date string) bool {
	if date == "" {
		return true
	}
	_, err := time.Parse(models.DateLayout, date)
	return err == nil
}

func isValidFontSize(size string) bool {
	return size == "" || fontSizePattern.MatchString(size)
}
