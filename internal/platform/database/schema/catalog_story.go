// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the remote tables and columns so that SQL in the
// stores is assembled from one place.
package schema

// StoriesTable represents the 'stories' table
type StoriesTable struct {
	Table     string
	ID        string
	Title     string
	Genre     string
	Synopsis  string
	Author    string
	AuthorBio string
	CoverURL  string
	Status    string
	CreatedAt string
}

// Stories is the schema definition for stories
var Stories = StoriesTable{
	Table:     "stories",
	ID:        "id",
	Title:     "title",
	Genre:     "genre",
	Synopsis:  "synopsis",
	Author:    "author",
	AuthorBio: "author_bio",
	CoverURL:  "cover_url",
	Status:    "status",
	CreatedAt: "created_at",
}

// Columns returns the writable columns in insert order.
func (t StoriesTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Genre, t.Synopsis, t.Author, t.AuthorBio, t.CoverURL, t.Status, t.CreatedAt,
	}
}
