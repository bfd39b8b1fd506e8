// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampFontSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MinFontSize},
		{-4, MinFontSize},
		{12, 12},
		{18, 18},
		{19, 18},
		{32, 32},
		{40, MaxFontSize},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampFontSize(tt.in), "size %d", tt.in)
	}
}

func TestSettingsFromRequest(t *testing.T) {
	defaults := SettingsFromRequest(httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, Settings{FontSize: DefaultFontSize, Serif: true}, defaults)

	custom := SettingsFromRequest(httptest.NewRequest("GET", "/?fontSize=24&serif=false", nil))
	assert.Equal(t, Settings{FontSize: 24, Serif: false}, custom)

	junk := SettingsFromRequest(httptest.NewRequest("GET", "/?fontSize=huge&serif=maybe", nil))
	assert.Equal(t, Settings{FontSize: DefaultFontSize, Serif: true}, junk)
}
