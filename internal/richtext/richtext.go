// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package richtext works with memo bodies stored as HTML markup: it extracts
// the human-visible text, counts embedded images and appends new ones.
package richtext

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// fragmentContext is the element memo markup is parsed into.
var fragmentContext = &nethtml.Node{
	Type:     nethtml.ElementNode,
	Data:     "div",
	DataAtom: atom.Div,
}

func parse(markup string) []*nethtml.Node {
	if markup == "" {
		return nil
	}
	nodes, err := nethtml.ParseFragment(strings.NewReader(markup), fragmentContext)
	if err != nil {
		return nil
	}
	return nodes
}

// PlainText returns the visible text of markup: every text node in document
// order, with no tags, attributes or comments. Script and style bodies are
// skipped. Markup that cannot be parsed yields "".
func PlainText(markup string) string {
	var b strings.Builder
	for _, n := range parse(markup) {
		collectText(n, &b)
	}
	return b.String()
}

func collectText(n *nethtml.Node, b *strings.Builder) {
	switch n.Type {
	case nethtml.TextNode:
		b.WriteString(n.Data)
		return
	case nethtml.CommentNode:
		return
	case nethtml.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// CountImages returns the number of <img> elements in markup.
func CountImages(markup string) int {
	count := 0
	for _, n := range parse(markup) {
		count += countImages(n)
	}
	return count
}

func countImages(n *nethtml.Node) int {
	count := 0
	if n.Type == nethtml.ElementNode && n.DataAtom == atom.Img {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countImages(c)
	}
	return count
}

// ImageTag renders an inline image element followed by a line break.
func ImageTag(dataURL string) string {
	return `<img src="` + html.EscapeString(dataURL) + `" alt="image"><br>`
}

// AppendImage appends an image to the end of markup.
func AppendImage(markup, dataURL string) string {
	return markup + ImageTag(dataURL)
}
