// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"slices"

	"github.com/MKhiriev/go-memo-keeper/models"
)

// NoTag is the filter option that matches every memo.
const NoTag = ""

// Tags returns the distinct tags across memos in byte-wise order. Tag
// comparison is case-sensitive, so "Go" and "go" are both listed. Empty tags
// are left out since they would collide with [NoTag].
func Tags(memos []models.Memo) []string {
	tags := []string{}
	for _, m := range memos {
		for _, tag := range m.Tags {
			if tag != NoTag {
				tags = append(tags, tag)
			}
		}
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

// Options returns the tag filter choices: [NoTag] followed by [Tags].
func Options(memos []models.Memo) []string {
	return append([]string{NoTag}, Tags(memos)...)
}

// ResolveTag keeps selected when it is still one of the available tags and
// falls back to [NoTag] otherwise.
func ResolveTag(available []string, selected string) string {
	if selected == NoTag || !slices.Contains(available, selected) {
		return NoTag
	}
	return selected
}
