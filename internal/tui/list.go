// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-memo-keeper/internal/query"
	"github.com/MKhiriev/go-memo-keeper/internal/richtext"
	"github.com/MKhiriev/go-memo-keeper/internal/service"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const untitled = "(untitled)"

type listModel struct {
	search    textinput.Model
	searching bool
	query     query.Query
	view      service.View
	idx       int
	status    string
	width     int
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search title, text or tags"
	search.Prompt = "/ "
	search.Width = 40
	return listModel{search: search}
}

// refresh recomputes the visible memos and applies the tag reset rule.
func (m *listModel) refresh(memos service.MemoService) {
	m.view = memos.View(m.query)
	m.query.Tag = m.view.Tag
	m.clamp()
}

func (m *listModel) clamp() {
	if m.idx >= len(m.view.Memos) {
		m.idx = len(m.view.Memos) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (models.Memo, bool) {
	if len(m.view.Memos) == 0 || m.idx < 0 || m.idx >= len(m.view.Memos) {
		return models.Memo{}, false
	}
	return m.view.Memos[m.idx], true
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.view.Memos)-1 {
		m.idx++
	}
}

// cycleTag selects the next tag filter option, wrapping to "all".
func (m *listModel) cycleTag() {
	options := m.view.TagOptions
	if len(options) == 0 {
		m.query.Tag = query.NoTag
		return
	}
	i := slices.Index(options, m.query.Tag)
	m.query.Tag = options[(i+1)%len(options)]
}

func (m listModel) View(th theme) string {
	var b strings.Builder

	if m.searching || m.query.Search != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	tag := "all"
	if m.query.Tag != query.NoTag {
		tag = th.tag.Render("#" + m.query.Tag)
	}
	b.WriteString(th.meta.Render(fmt.Sprintf("Tag: %s  Showing %d of %d", tag, len(m.view.Memos), m.view.Total)))
	b.WriteString("\n\n")

	if len(m.view.Memos) == 0 {
		b.WriteString("No memos.\n")
	}
	for i, memo := range m.view.Memos {
		b.WriteString(m.renderRow(th, memo, i == m.idx))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(th.status.Render(m.status))
		b.WriteString("\n")
	}

	help := "n new  enter open  d delete  / search  t tag  T theme  i about  q quit"
	if m.searching {
		help = "enter done  esc clear search"
	}
	return renderPage(th, "MEMOS", b.String(), help)
}

func (m listModel) renderRow(th theme, memo models.Memo, selected bool) string {
	title := memo.Title
	if strings.TrimSpace(title) == "" {
		title = untitled
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	row := fitText(title, max(width/2, 12))
	if selected {
		row = th.selected.Render("> " + row)
	} else {
		row = "  " + row
	}

	meta := []string{memo.Date}
	if len(memo.Tags) > 0 {
		tags := make([]string, 0, len(memo.Tags))
		for _, tag := range memo.Tags {
			tags = append(tags, "#"+tag)
		}
		meta = append(meta, th.tag.Render(strings.Join(tags, " ")))
	}
	if n := richtext.CountImages(memo.ContentHTML); n > 0 {
		meta = append(meta, pluralize(n, "image", "images"))
	}

	return row + "  " + th.meta.Render(strings.Join(meta, "  "))
}
