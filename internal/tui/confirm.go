// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	id    int64
	title string
}

func (m confirmModel) View(th theme) string {
	content := "Delete \"" + fitText(m.title, 40) + "\"?\n\n"
	content += "y yes    n no"
	return th.overlay.Render(content)
}
