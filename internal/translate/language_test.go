// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input string
		code  string
		ok    bool
	}{
		{"fr", "fr", true},
		{"en-GB", "en", true},
		{"ja", "ja", true},
		{"Spanish", "es", true},
		{"indonesian", "id", true},
		{"original", "", false},
		{"Original", "", false},
		{"", "", false},
		{"  ", "", false},
		{"de", "", false},
		{"not a language", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Resolve(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestLanguages(t *testing.T) {
	languages := Languages()

	var codes []string
	for _, lang := range languages {
		codes = append(codes, lang.Code)
	}
	assert.Equal(t, []string{"original", "en", "id", "es", "fr", "ja"}, codes)

	french, _ := Resolve("fr")
	assert.Equal(t, "French", french.Name)
	assert.Equal(t, "français", french.Native)
}
