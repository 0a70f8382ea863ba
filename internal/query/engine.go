// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query computes what the memo list shows: the filtered view in
// display order and the tag filter options.
package query

import (
	"cmp"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/go-memo-keeper/internal/richtext"
	"github.com/MKhiriev/go-memo-keeper/models"
)

// tagSeparator joins a memo's tags in the search haystack.
const tagSeparator = ", "

// Query holds the list filters. The zero value matches every memo.
type Query struct {
	// Search is matched case-insensitively against title, visible text and
	// tags. Surrounding whitespace is ignored.
	Search string

	// Tag, when non-empty, keeps only memos carrying exactly this tag.
	Tag string
}

// Engine filters memo lists. Extracting visible text from markup is the
// costly part of a search, so the lower-cased text is cached per distinct
// body. Results never depend on the cache.
//
// Engine is safe for concurrent use.
type Engine struct {
	plain *lru.Cache[string, string]
}

// NewEngine returns an engine caching the text of up to cacheSize bodies.
// A non-positive size disables the cache.
func NewEngine(cacheSize int) *Engine {
	e := &Engine{}
	if cacheSize > 0 {
		// lru.New only fails for a non-positive size
		e.plain, _ = lru.New[string, string](cacheSize)
	}
	return e
}

// Filter returns the memos matching q, newest first. The input is not
// modified. An empty result is a valid outcome.
func (e *Engine) Filter(memos []models.Memo, q Query) []models.Memo {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.Memo, 0, len(memos))
	for _, m := range memos {
		if e.match(m, q.Tag, term) {
			out = append(out, m)
		}
	}

	SortNewestFirst(out)
	return out
}

// Matches reports whether a single memo passes q.
func (e *Engine) Matches(m models.Memo, q Query) bool {
	return e.match(m, q.Tag, strings.ToLower(strings.TrimSpace(q.Search)))
}

func (e *Engine) match(m models.Memo, tag, term string) bool {
	if tag != "" && !m.HasTag(tag) {
		return false
	}
	return term == "" || strings.Contains(e.haystack(m), term)
}

func (e *Engine) haystack(m models.Memo) string {
	return strings.ToLower(m.Title) + " " +
		e.plainText(m.ContentHTML) + " " +
		strings.ToLower(strings.Join(m.Tags, tagSeparator))
}

func (e *Engine) plainText(markup string) string {
	if markup == "" {
		return ""
	}
	if e.plain == nil {
		return strings.ToLower(richtext.PlainText(markup))
	}
	if text, ok := e.plain.Get(markup); ok {
		return text
	}
	text := strings.ToLower(richtext.PlainText(markup))
	e.plain.Add(markup, text)
	return text
}

// SortNewestFirst orders memos by descending id in place.
func SortNewestFirst(memos []models.Memo) {
	slices.SortStableFunc(memos, func(a, b models.Memo) int {
		return cmp.Compare(b.ID, a.ID)
	})
}
