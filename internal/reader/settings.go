// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"net/http"
	"strconv"

	requestutil "github.com/taibuivan/novelia/internal/platform/request"
)

// Font size bounds in pixels. Sizes move in steps of fontSizeStep.
const (
	MinFontSize     = 12
	MaxFontSize     = 32
	DefaultFontSize = 18
	fontSizeStep    = 2
)

// Settings are the reader's display preferences, echoed back so clients can persist them.
type Settings struct {
	FontSize int  `json:"fontSize"`
	Serif    bool `json:"serif"`
}

// ClampFontSize bounds size to MinFontSize..MaxFontSize on the step grid.
func ClampFontSize(size int) int {
	size = max(MinFontSize, min(MaxFontSize, size))
	return MinFontSize + (size-MinFontSize)/fontSizeStep*fontSizeStep
}

// SettingsFromRequest reads fontSize and serif from the query string.
// Serif reading is on unless explicitly disabled.
func SettingsFromRequest(request *http.Request) Settings {
	settings := Settings{
		FontSize: ClampFontSize(requestutil.QueryInt(request, "fontSize", DefaultFontSize)),
		Serif:    true,
	}

	if raw := request.URL.Query().Get("serif"); raw != "" {
		if serif, err := strconv.ParseBool(raw); err == nil {
			settings.Serif = serif
		}
	}
	return settings
}
