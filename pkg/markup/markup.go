// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package markup splits inline HTML into alternating tag and text segments.

Both the reader highlighter and the translation client transform only text
and must leave every tag byte-for-byte intact. A tag is any run that starts
with '<' and ends at the next '>'. An unterminated '<' is treated as text.

	for _, segment := range markup.Split("<p>Hello <b>world</b></p>") {
	    if !segment.Tag {
	        // transform segment.Text
	    }
	}
*/
package markup

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Segment is one run of content.
type Segment struct {
	Text string
	Tag  bool
}

// Split cuts content into segments. Concatenating every segment's Text
// reproduces content exactly. Empty text runs are omitted.
func Split(content string) []Segment {
	if content == "" {
		return nil
	}

	var segments []Segment
	cursor := 0

	for _, loc := range tagPattern.FindAllStringIndex(content, -1) {
		if loc[0] > cursor {
			segments = append(segments, Segment{Text: content[cursor:loc[0]]})
		}
		segments = append(segments, Segment{Text: content[loc[0]:loc[1]], Tag: true})
		cursor = loc[1]
	}

	if cursor < len(content) {
		segments = append(segments, Segment{Text: content[cursor:]})
	}

	return segments
}

// Join concatenates segments back into a single string.
func Join(segments []Segment) string {
	var builder strings.Builder
	for _, segment := range segments {
		builder.WriteString(segment.Text)
	}
	return builder.String()
}

// MapText applies transform to every text segment and leaves tags untouched.
func MapText(content string, transform func(string) string) string {
	segments := Split(content)
	for i := range segments {
		if !segments[i].Tag {
			segments[i].Text = transform(segments[i].Text)
		}
	}
	return Join(segments)
}

// Tags returns the tag names in document order, lower-cased, with a leading
// '/' for closing tags (e.g. ["p", "b", "/b", "/p"]). Attributes are ignored,
// so two documents with the same structure but different attribute values
// compare equal.
func Tags(content string) []string {
	var names []string
	for _, segment := range Split(content) {
		if !segment.Tag {
			continue
		}
		if name := tagName(segment.Text); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// HasTags reports whether content contains at least one tag.
func HasTags(content string) bool {
	return tagPattern.MatchString(content)
}

// tagName extracts "p" from "<p class=x>", "/p" from "</p>" and "br" from "<br/>".
func tagName(tag string) string {
	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(tag, "<"), ">"))
	inner = strings.TrimSuffix(inner, "/")

	closing := strings.HasPrefix(inner, "/")
	inner = strings.TrimPrefix(inner, "/")

	end := strings.IndexAny(inner, " \t\r\n/")
	if end >= 0 {
		inner = inner[:end]
	}
	if inner == "" {
		return ""
	}

	inner = strings.ToLower(inner)
	if closing {
		return "/" + inner
	}
	return inner
}
