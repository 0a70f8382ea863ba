// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package richtext

import (
	"html"
	"regexp"
	"strconv"
)

// imageRefScheme prefixes the short src values standing in for data URLs.
const imageRefScheme = "memo-image:"

var (
	dataSrcPattern = regexp.MustCompile(`(\ssrc\s*=\s*["'])(data:[^"']*)`)
	refSrcPattern  = regexp.MustCompile(`(\ssrc\s*=\s*["'])` + imageRefScheme + `([0-9]+)`)
)

// ImageRefs swaps inline image data URLs for short references while markup
// is being edited, and swaps them back afterwards. The zero value is ready to
// use.
type ImageRefs struct {
	// attribute-escaped data URLs; reference n points at urls[n-1]
	urls []string
}

// Add keeps dataURL and returns the reference to put in its place.
func (r *ImageRefs) Add(dataURL string) string {
	return r.add(html.EscapeString(dataURL))
}

func (r *ImageRefs) add(escaped string) string {
	r.urls = append(r.urls, escaped)
	return imageRefScheme + strconv.Itoa(len(r.urls))
}

// Len returns the number of data URLs held.
func (r *ImageRefs) Len() int {
	return len(r.urls)
}

// Collapse replaces every data URL src attribute in markup with a reference.
func (r *ImageRefs) Collapse(markup string) string {
	return dataSrcPattern.ReplaceAllStringFunc(markup, func(match string) string {
		sub := dataSrcPattern.FindStringSubmatch(match)
		return sub[1] + r.add(sub[2])
	})
}

// Expand puts the data URLs back in place of their references. Unknown
// references are left as they are.
func (r *ImageRefs) Expand(markup string) string {
	return refSrcPattern.ReplaceAllStringFunc(markup, func(match string) string {
		sub := refSrcPattern.FindStringSubmatch(match)
		n, err := strconv.Atoi(sub[2])
		if err != nil || n < 1 || n > len(r.urls) {
			return match
		}
		return sub[1] + r.urls[n-1]
	})
}
