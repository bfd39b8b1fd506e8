// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reader renders chapters for reading: in-text search with highlighted,
numbered matches, previous/next navigation, optional translation and the
reader's display settings.
*/
package reader

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taibuivan/novelia/pkg/markup"
)

// Visual states of a highlighted match.
const (
	classCurrent  = "match-current"
	classInactive = "match-inactive"
)

// entityPattern matches character references, which are never split by a highlight.
var entityPattern = regexp.MustCompile(`&(?:#[0-9]+|#[xX][0-9a-fA-F]+|[a-zA-Z][a-zA-Z0-9]*);`)

// Highlighted is highlighted content and its number of matches.
type Highlighted struct {
	Content string
	Count   int
}

// Anchor returns the element id of match n, or "" when n is not a match number.
func Anchor(n int) string {
	if n < 1 {
		return ""
	}
	return fmt.Sprintf("match-%d", n)
}

/*
Highlight wraps every case-insensitive occurrence of query in content with a
numbered <mark> element.

Matches are numbered from 1 across the whole content. The match whose number
equals current is marked "match-current", every other one "match-inactive".
The query is matched literally. Tags and character references are copied
unchanged, so attribute values are never matched. A blank query returns the
content unchanged with a count of 0.
*/
func Highlight(content, query string, current int) Highlighted {
	if strings.TrimSpace(query) == "" {
		return Highlighted{Content: content}
	}

	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	count := 0

	wrap := func(match string) string {
		count++
		class := classInactive
		if count == current {
			class = classCurrent
		}
		return fmt.Sprintf(`<mark id="%s" data-match="%d" class="match %s">%s</mark>`,
			Anchor(count), count, class, match)
	}

	var builder strings.Builder
	for _, segment := range markup.Split(content) {
		if segment.Tag {
			builder.WriteString(segment.Text)
			continue
		}
		highlightText(&builder, segment.Text, pattern, wrap)
	}

	return Highlighted{Content: builder.String(), Count: count}
}

// highlightText replaces matches in text while passing character references through.
func highlightText(builder *strings.Builder, text string, pattern *regexp.Regexp, wrap func(string) string) {
	cursor := 0
	for _, loc := range entityPattern.FindAllStringIndex(text, -1) {
		builder.WriteString(pattern.ReplaceAllStringFunc(text[cursor:loc[0]], wrap))
		builder.WriteString(text[loc[0]:loc[1]])
		cursor = loc[1]
	}
	builder.WriteString(pattern.ReplaceAllStringFunc(text[cursor:], wrap))
}
