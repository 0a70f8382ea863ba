// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Draft is a snapshot of the editor surface at the moment the user saves.
// Tags are kept as the raw comma-separated text the user typed.
type Draft struct {
	Title       string
	ContentHTML string
	TagsText    string
	Date        string
	FontSize    string
	IsBold      bool
}

// DraftFromMemo fills a draft with the memo's fields for editing.
func DraftFromMemo(m Memo) Draft {
	return Draft{
		Title:       m.Title,
		ContentHTML: m.ContentHTML,
		TagsText:    FormatTags(m.Tags),
		Date:        m.Date,
		FontSize:    m.FontSize,
		IsBold:      m.IsBold,
	}
}

// ParseTags splits comma-separated tag text, trimming each tag and dropping
// empty ones. It never returns nil.
func ParseTags(text string) []string {
	tags := []string{}
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FormatTags is the inverse of [ParseTags] for display.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}
