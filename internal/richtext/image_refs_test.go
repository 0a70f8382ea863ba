// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageRefs_CollapseExpand(t *testing.T) {
	markup := `<p>Trip</p><img src="data:image/png;base64,AAAA" alt="image"><br>` +
		`<img alt="x" src='data:image/gif;base64,BBBB'><img src="https://example.com/a.png">`

	var refs ImageRefs
	short := refs.Collapse(markup)

	assert.Equal(t, `<p>Trip</p><img src="memo-image:1" alt="image"><br>`+
		`<img alt="x" src='memo-image:2'><img src="https://example.com/a.png">`, short)
	assert.Equal(t, 2, refs.Len())
	assert.Equal(t, 3, CountImages(short))
	assert.Equal(t, markup, refs.Expand(short))
}

func TestImageRefs_Add(t *testing.T) {
	var refs ImageRefs
	dataURL := "data:image/png;base64," + strings.Repeat("A", 1<<16)

	doc := AppendImage("<p>x</p>", refs.Add(dataURL))
	assert.Equal(t, `<p>x</p><img src="memo-image:1" alt="image"><br>`, doc)
	assert.Equal(t, AppendImage("<p>x</p>", dataURL), refs.Expand(doc))
}

func TestImageRefs_ExpandLeavesUnknownRefs(t *testing.T) {
	var refs ImageRefs
	refs.Add("data:image/png;base64,AAAA")

	markup := `<img src="memo-image:7"><img src="memo-image:0"> memo-image:1 as text`
	assert.Equal(t, markup, refs.Expand(markup))
}

func TestImageRefs_IgnoresDataSrcLookalikes(t *testing.T) {
	var refs ImageRefs
	markup := `<img data-src="data:image/png;base64,AAAA"><p>data:text</p>`

	assert.Equal(t, markup, refs.Collapse(markup))
	assert.Zero(t, refs.Len())
}
