// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-memo-keeper/internal/richtext"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const (
	fieldTitle = iota
	fieldDate
	fieldTags
	fieldContent
	fieldCount
)

// imagePathSeparator splits several paths typed into the attach prompt.
const imagePathSeparator = ";"

type editorModel struct {
	inputs  []textinput.Model // title, date, tags
	content textarea.Model
	focus   int

	fontIdx int
	bold    bool

	attaching bool
	attach    textinput.Model

	// imageRefs holds the data URLs shown as short references in content.
	imageRefs richtext.ImageRefs

	// generation changes whenever another memo is loaded, so image reads
	// started for the previous one are dropped.
	generation int
	pending    int

	editingID int64
	status    string
	errMsg    string
}

func newEditorModel() editorModel {
	inputs := make([]textinput.Model, fieldContent)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldDate].Placeholder = models.DateLayout
	inputs[fieldDate].CharLimit = len(models.DateLayout)
	inputs[fieldTags].Placeholder = "comma, separated, tags"

	content := textarea.New()
	content.Placeholder = "Memo body (HTML markup)"
	content.CharLimit = 0
	content.MaxHeight = 0
	content.SetWidth(60)
	content.SetHeight(8)
	content.ShowLineNumbers = false

	attach := textinput.New()
	attach.Placeholder = "/path/to/image.png; /path/to/other.jpg"
	attach.Prompt = "image: "
	attach.Width = 60

	m := editorModel{inputs: inputs, content: content, attach: attach}
	m.fontIdx = slices.Index(models.FontSizes, models.DefaultFontSize)
	return m
}

// reset clears the editor for a new memo dated today.
func (m *editorModel) reset(today string) {
	m.load(models.Memo{Date: today, FontSize: models.DefaultFontSize})
	m.editingID = 0
}

// load fills the editor with memo for editing.
func (m *editorModel) load(memo models.Memo) {
	d := models.DraftFromMemo(memo)

	m.inputs[fieldTitle].SetValue(d.Title)
	m.inputs[fieldDate].SetValue(d.Date)
	m.inputs[fieldTags].SetValue(d.TagsText)
	m.imageRefs = richtext.ImageRefs{}
	m.content.SetValue(m.imageRefs.Collapse(d.ContentHTML))
	m.bold = d.IsBold
	m.fontIdx = slices.Index(models.FontSizes, d.FontSize)
	if m.fontIdx < 0 {
		m.fontIdx = slices.Index(models.FontSizes, models.DefaultFontSize)
	}

	m.editingID = memo.ID
	m.generation++
	m.pending = 0
	m.attaching = false
	m.attach.SetValue("")
	m.status, m.errMsg = "", ""
	m.setFocus(fieldTitle)
}

func (m editorModel) draft() models.Draft {
	return models.Draft{
		Title:       m.inputs[fieldTitle].Value(),
		ContentHTML: m.imageRefs.Expand(m.content.Value()),
		TagsText:    m.inputs[fieldTags].Value(),
		Date:        strings.TrimSpace(m.inputs[fieldDate].Value()),
		FontSize:    m.fontSize(),
		IsBold:      m.bold,
	}
}

func (m editorModel) fontSize() string {
	if m.fontIdx < 0 || m.fontIdx >= len(models.FontSizes) {
		return models.DefaultFontSize
	}
	return models.FontSizes[m.fontIdx]
}

func (m *editorModel) cycleFontSize() {
	m.fontIdx = (m.fontIdx + 1) % len(models.FontSizes)
}

func (m *editorModel) appendImage(dataURL string) {
	m.content.SetValue(richtext.AppendImage(m.content.Value(), m.imageRefs.Add(dataURL)))
}

func (m *editorModel) setFocus(field int) tea.Cmd {
	m.focus = (field + fieldCount) % fieldCount

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.content.Blur()

	if m.focus == fieldContent {
		return m.content.Focus()
	}
	return m.inputs[m.focus].Focus()
}

func (m *editorModel) startAttach() tea.Cmd {
	m.attaching = true
	m.attach.SetValue("")
	return m.attach.Focus()
}

func (m *editorModel) stopAttach() tea.Cmd {
	m.attaching = false
	m.attach.Blur()
	return m.setFocus(m.focus)
}

// attachPaths returns the paths typed into the attach prompt.
func (m editorModel) attachPaths() []string {
	var paths []string
	for _, p := range strings.Split(m.attach.Value(), imagePathSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// updateFocused forwards msg to the focused field.
func (m editorModel) updateFocused(msg tea.Msg) (editorModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.attaching:
		m.attach, cmd = m.attach.Update(msg)
	case m.focus == fieldContent:
		m.content, cmd = m.content.Update(msg)
	default:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m editorModel) View(th theme) string {
	var b strings.Builder

	b.WriteString("Title: " + m.inputs[fieldTitle].View() + "\n")
	b.WriteString("Date:  " + m.inputs[fieldDate].View() + "\n")
	b.WriteString("Tags:  " + m.inputs[fieldTags].View() + "\n")

	bold := "off"
	if m.bold {
		bold = "on"
	}
	b.WriteString(th.meta.Render("Font: "+m.fontSize()+"  Bold: "+bold) + "\n\n")
	b.WriteString(m.content.View() + "\n")

	if n := richtext.CountImages(m.content.Value()); n > 0 || m.pending > 0 {
		line := pluralize(n, "image", "images")
		if m.pending > 0 {
			line += ", " + pluralize(m.pending, "loading", "loading")
		}
		b.WriteString(th.meta.Render(line) + "\n")
	}

	preview := fitText(strings.Join(strings.Fields(richtext.PlainText(m.content.Value())), " "), 60)
	if preview != "" {
		style := th.meta
		if m.bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render("Preview: "+preview) + "\n")
	}

	if m.attaching {
		b.WriteString("\n" + m.attach.View() + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + th.status.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + th.err.Render(m.errMsg) + "\n")
	}

	title := "NEW MEMO"
	if m.editingID != 0 {
		title = "EDIT MEMO"
	}

	help := "ctrl+s save  ctrl+o image  ctrl+y copy text  ctrl+f font  ctrl+b bold  tab next  esc back"
	if m.attaching {
		help = "enter load (separate paths with ;)  esc cancel"
	}
	return renderPage(th, title, b.String(), help)
}
