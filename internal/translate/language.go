// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translate

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Original is the pseudo-language meaning "the text as the owner wrote it".
const Original = "original"

// supported is the list of reader target languages, in menu order.
var supported = []language.Tag{
	language.English,
	language.Indonesian,
	language.Spanish,
	language.French,
	language.Japanese,
}

var matcher = language.NewMatcher(supported)

// Language describes one reader target language.
type Language struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Native string `json:"native"`
}

// Languages returns the original pseudo-language followed by every supported target.
func Languages() []Language {
	languages := []Language{{Code: Original, Name: "Original", Native: "Original"}}
	for _, tag := range supported {
		languages = append(languages, describe(tag))
	}
	return languages
}

// Resolve maps a client-supplied code ("fr", "en-GB", "Spanish") onto a
// supported target. It reports false for "original", blanks and anything
// not supported.
func Resolve(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	if code == "" || strings.EqualFold(code, Original) {
		return Language{}, false
	}

	// The reader menu historically sent English names.
	for _, candidate := range supported {
		if strings.EqualFold(display.English.Tags().Name(candidate), code) {
			return describe(candidate), true
		}
	}

	tag, err := language.Parse(code)
	if err != nil {
		return Language{}, false
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Language{}, false
	}
	return describe(supported[index]), true
}

func describe(tag language.Tag) Language {
	return Language{
		Code:   tag.String(),
		Name:   display.English.Tags().Name(tag),
		Native: display.Self.Name(tag),
	}
}
