// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

const (
	themeDark  = "dark"
	themeLight = "light"
)

type theme struct {
	name     string
	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
	status   lipgloss.Style
	selected lipgloss.Style
	tag      lipgloss.Style
	meta     lipgloss.Style
	overlay  lipgloss.Style
}

func newTheme(name string) theme {
	if name == themeLight {
		return theme{
			name:     themeLight,
			app:      lipgloss.NewStyle().Padding(1, 2).Foreground(lipgloss.Color("235")),
			title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			help:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
			status:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("25")).Padding(1, 2),
		}
	}

	return theme{
		name:     themeDark,
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(lipgloss.Color("252")),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		help:     lipgloss.NewStyle().Faint(true),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		meta:     lipgloss.NewStyle().Faint(true),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(1, 2),
	}
}

func (t theme) toggled() theme {
	if t.name == themeDark {
		return newTheme(themeLight)
	}
	return newTheme(themeDark)
}
