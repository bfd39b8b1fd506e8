// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and common body decoding
patterns, ensuring consistent error handling.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/novelia/internal/platform/validate"
)

// maxBodyBytes bounds request bodies; chapters carry whole HTML documents.
const maxBodyBytes = 4 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID retrieves a named URL parameter from the request.
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// QueryInt parses an integer query parameter, returning fallback when absent or malformed.
func QueryInt(request *http.Request, name string, fallback int) int {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
