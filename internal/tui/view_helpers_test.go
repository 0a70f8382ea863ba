// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-memo-keeper/models"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "long te...", fitText("long text here", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "어떤...", fitText("어떤 메모 제목", 5))
	assert.Equal(t, "any", fitText("any", 0))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 image", pluralize(1, "image", "images"))
	assert.Equal(t, "3 images", pluralize(3, "image", "images"))
}

func TestListRow_UntitledAndImages(t *testing.T) {
	l := newListModel()
	row := l.renderRow(newTheme(themeDark), modelsMemoWithImages(), false)

	assert.Contains(t, row, untitled)
	assert.Contains(t, row, "2 images")
	assert.Contains(t, row, "#photos")
}

func modelsMemoWithImages() models.Memo {
	return models.Memo{
		ID:          1,
		ContentHTML: `<img src="data:image/png;base64,AAAA" alt="image"><br><img src="data:image/gif;base64,BBBB" alt="image"><br>`,
		Tags:        []string{"photos"},
		Date:        "2024-05-01",
	}
}
