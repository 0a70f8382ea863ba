// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/richtext"
	"github.com/MKhiriev/go-memo-keeper/internal/service"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const statusTTL = 3 * time.Second

type screen int

const (
	screenList screen = iota
	screenEditor
	screenAbout
)

// writeClipboard is swapped in tests; the real clipboard needs a display.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx    context.Context
	memos  service.MemoService
	images service.ImageLoader
	info   models.AppBuildInfo
	now    func() time.Time

	theme         theme
	currentScreen screen

	list   listModel
	editor editorModel

	showConfirm  bool
	confirm      confirmModel
	showError    bool
	errorOverlay errorOverlayModel
}

func newAppModel(ctx context.Context, memos service.MemoService, images service.ImageLoader, opts Options) appModel {
	m := appModel{
		ctx:           ctx,
		memos:         memos,
		images:        images,
		info:          opts.BuildInfo,
		now:           time.Now,
		theme:         newTheme(opts.Theme),
		currentScreen: screenList,
		list:          newListModel(),
		editor:        newEditorModel(),
	}
	m.list.refresh(memos)
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.width = msg.Width
		m.editor.content.SetWidth(max(msg.Width-8, 20))
		m.editor.content.SetHeight(max(msg.Height-18, 4))
		return m, nil
	case imageLoadedMsg:
		return m.handleImageLoaded(msg)
	case copiedMsg:
		if msg.err != nil {
			m.editor.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.editor.status = "Text copied."
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.editor.status = ""
		m.list.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenEditor:
		return m.updateEditor(msg)
	case screenAbout:
		if k, ok := msg.(tea.KeyMsg); ok && (key.Matches(k, keys.esc) || key.Matches(k, keys.quit)) {
			m.currentScreen = screenList
		}
	}

	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		// the overlay already asked
		ok, err := m.memos.Delete(m.ctx, m.confirm.id, service.Answer(true))
		if err != nil {
			m.showErrorf(humanizeError(err))
		} else if ok {
			m.list.status = "Memo deleted."
		}
		m.syncEditorAfterDelete(m.confirm.id)
		m.list.refresh(m.memos)
		m.confirm = confirmModel{}
		return m, cmdClearStatus()
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

// syncEditorAfterDelete resets the editor when its memo was deleted.
func (m *appModel) syncEditorAfterDelete(id int64) {
	if m.editor.editingID == id {
		m.editor.reset(models.Today(m.now()))
	}
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.list.searching {
			var cmd tea.Cmd
			m.list.search, cmd = m.list.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(k, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		case key.Matches(k, keys.esc):
			m.list.searching = false
			m.list.search.Blur()
			m.list.search.SetValue("")
			m.list.query.Search = ""
			m.list.refresh(m.memos)
			return m, nil
		}
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(k)
		m.list.query.Search = m.list.search.Value()
		m.list.idx = 0
		m.list.refresh(m.memos)
		return m, cmd
	}

	switch {
	case key.Matches(k, keys.quit):
		return m, tea.Quit
	case key.Matches(k, keys.up):
		m.list.moveUp()
	case key.Matches(k, keys.down):
		m.list.moveDown()
	case key.Matches(k, keys.search):
		m.list.searching = true
		return m, m.list.search.Focus()
	case key.Matches(k, keys.tag):
		m.list.cycleTag()
		m.list.idx = 0
		m.list.refresh(m.memos)
	case key.Matches(k, keys.theme):
		m.theme = m.theme.toggled()
	case key.Matches(k, keys.about):
		m.currentScreen = screenAbout
	case key.Matches(k, keys.newMemo):
		m.memos.New()
		m.editor.reset(models.Today(m.now()))
		m.currentScreen = screenEditor
		return m, m.editor.setFocus(fieldTitle)
	case key.Matches(k, keys.enter):
		current, ok := m.list.current()
		if !ok {
			return m, nil
		}
		memo, found := m.memos.Open(m.ctx, current.ID)
		if !found {
			m.list.refresh(m.memos)
			return m, nil
		}
		m.editor.load(memo)
		m.currentScreen = screenEditor
		return m, m.editor.setFocus(fieldTitle)
	case key.Matches(k, keys.delete):
		current, ok := m.list.current()
		if !ok {
			return m, nil
		}
		title := current.Title
		if title == "" {
			title = untitled
		}
		m.confirm = confirmModel{id: current.ID, title: title}
		m.showConfirm = true
	}

	return m, nil
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.updateFocused(msg)
		return m, cmd
	}

	if m.editor.attaching {
		switch {
		case key.Matches(k, keys.esc):
			return m, m.editor.stopAttach()
		case key.Matches(k, keys.enter):
			paths := m.editor.attachPaths()
			cmds := []tea.Cmd{m.editor.stopAttach()}
			for _, path := range paths {
				cmds = append(cmds, m.cmdLoadImage(path))
			}
			m.editor.pending += len(paths)
			return m, tea.Batch(cmds...)
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.updateFocused(k)
		return m, cmd
	}

	switch {
	case key.Matches(k, keys.esc):
		m.currentScreen = screenList
		m.list.refresh(m.memos)
		return m, nil
	case key.Matches(k, keys.save):
		return m.save()
	case key.Matches(k, keys.attach):
		if m.images == nil {
			m.editor.errMsg = "Images are not available."
			return m, nil
		}
		return m, m.editor.startAttach()
	case key.Matches(k, keys.copy):
		return m, cmdCopyText(richtext.PlainText(m.editor.content.Value()))
	case key.Matches(k, keys.bold):
		m.editor.bold = !m.editor.bold
		return m, nil
	case key.Matches(k, keys.font):
		m.editor.cycleFontSize()
		return m, nil
	case key.Matches(k, keys.tab):
		return m, m.editor.setFocus(m.editor.focus + 1)
	case key.Matches(k, keys.backtab):
		return m, m.editor.setFocus(m.editor.focus - 1)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.updateFocused(k)
	return m, cmd
}

func (m appModel) save() (tea.Model, tea.Cmd) {
	memo, err := m.memos.Save(m.ctx, m.editor.draft())
	if err != nil {
		m.editor.status = ""
		m.editor.errMsg = humanizeError(err)
		return m, nil
	}

	m.editor.editingID = memo.ID
	m.editor.inputs[fieldTitle].SetValue(memo.Title)
	m.editor.inputs[fieldDate].SetValue(memo.Date)
	m.editor.errMsg = ""
	m.editor.status = "Saved."
	m.list.refresh(m.memos)
	return m, cmdClearStatus()
}

func (m appModel) handleImageLoaded(msg imageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.editor.generation {
		logger.FromContext(m.ctx).Debug().
			Str("func", "appModel.handleImageLoaded").
			Str("path", msg.path).
			Msg("dropping image for a closed memo")
		return m, nil
	}

	if m.editor.pending > 0 {
		m.editor.pending--
	}
	if msg.err != nil {
		m.editor.errMsg = msg.path + ": " + humanizeError(msg.err)
		return m, nil
	}

	m.editor.appendImage(msg.dataURL)
	m.editor.status = "Image added."
	return m, cmdClearStatus()
}

func (m appModel) cmdLoadImage(path string) tea.Cmd {
	ctx, images, generation := m.ctx, m.images, m.editor.generation
	return func() tea.Msg {
		dataURL, err := images.Load(ctx, path)
		return imageLoadedMsg{generation: generation, path: path, dataURL: dataURL, err: err}
	}
}

func cmdCopyText(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View(m.theme)
	case screenEditor:
		body = m.editor.View(m.theme)
	case screenAbout:
		body = renderBuildInfoWindow(m.theme, m.info)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View(m.theme)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.theme)
	}

	return m.theme.app.Render(body)
}

var _ tea.Model = appModel{}
