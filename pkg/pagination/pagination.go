// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// Page-based navigation is requested via query parameters and the resulting
// metadata is delivered next to the data in the response envelope. Catalogue
// listings are assembled in memory (the remote may be unavailable), so
// [Window] slices an already sorted list rather than pushing OFFSET into SQL.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the index of the first item of the page. It saturates at
// [math.MaxInt] instead of overflowing for absurdly large pages.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewMeta constructs pagination metadata, deriving TotalPages from total and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Window returns the items on the requested page and the matching metadata.
// A page past the end yields an empty, non-nil slice.
func Window[T any](items []T, params Params) ([]T, Meta) {
	meta := NewMeta(params.Page, params.Limit, len(items))

	start := params.Offset()
	if start >= len(items) {
		return []T{}, meta
	}

	end := min(start+params.Limit, len(items))
	return items[start:end], meta
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// Invalid, negative or excessive values fall back to [DefaultPage] and [DefaultLimit].
func FromRequest(request *http.Request) Params {
	page := parseIntParam(request, "page", DefaultPage)
	limit := parseIntParam(request, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

func parseIntParam(request *http.Request, key string, defaultVal int) int {
	raw := request.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
