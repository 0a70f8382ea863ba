// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// DefaultFontSize is applied to memos that carry no font size.
const DefaultFontSize = "16px"

// DateLayout is the calendar date format used by [Memo.Date].
const DateLayout = "2006-01-02"

// FontSizes lists the size tokens offered by the editor, smallest first.
var FontSizes = []string{"12px", "14px", "16px", "18px", "20px", "24px"}

// Memo is a single persisted note.
//
// The JSON field names match the layout of the storage slot, so a blob written
// by an earlier version of the editor loads without conversion.
type Memo struct {
	// ID is the creation timestamp in Unix milliseconds. It is unique within
	// the list, never reassigned, and is the display sort key (newest first).
	ID int64 `json:"id"`

	// Title may be empty.
	Title string `json:"title"`

	// ContentHTML is the rich-text body serialized as HTML markup. Images are
	// embedded inline as data URLs.
	ContentHTML string `json:"contentHTML"`

	// Tags are free-text labels, case-sensitive, duplicates allowed.
	Tags []string `json:"tags"`

	// Date is a calendar date in YYYY-MM-DD form.
	Date string `json:"date"`

	// FontSize is a CSS-like size token such as "16px".
	FontSize string `json:"fontSize"`

	// IsBold renders the whole body in bold.
	IsBold bool `json:"isBold"`
}

// Normalize fills the defaults every loaded memo must carry: non-nil tags,
// a font size, and content (possibly empty). Calling it twice is the same as
// calling it once.
func (m *Memo) Normalize() {
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if m.FontSize == "" {
		m.FontSize = DefaultFontSize
	}
}

// Clone returns a copy of m that shares no memory with it.
func (m Memo) Clone() Memo {
	m.Tags = slices.Clone(m.Tags)
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return m
}

// HasTag reports whether tag is one of the memo's tags (exact match).
func (m Memo) HasTag(tag string) bool {
	return slices.Contains(m.Tags, tag)
}

// Today returns now's calendar date in local time.
func Today(now time.Time) string {
	return now.Local().Format(DateLayout)
}
