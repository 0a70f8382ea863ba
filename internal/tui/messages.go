// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// imageLoadedMsg carries one finished image read. generation ties it to the
// editor session that asked for it.
type imageLoadedMsg struct {
	generation int
	path       string
	dataURL    string
	err        error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
