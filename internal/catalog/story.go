// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog owns stories and chapters.

The [Service] is the single facade the HTTP layer, the reader and the CLI call.
It hides the remote/local duality: reads try the remote store first and fall
back to the device-local copy on any failure; writes always commit locally and
then attempt the remote store on a best-effort basis.
*/
package catalog

// Status is the publication state of a story.
type Status string

const (
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
)

// GenreAll is the genre filter value that disables genre filtering.
const GenreAll = "All"

// Story is a serialised work made of ordered chapters.
type Story struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Genre     string `json:"genre"`
	Synopsis  string `json:"synopsis"`
	Author    string `json:"author,omitempty"`
	AuthorBio string `json:"authorBio,omitempty"`
	CoverURL  string `json:"coverUrl,omitempty"`
	Status    Status `json:"status"`
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
}

// Chapter is one readable unit of a story. Content may carry inline HTML.
type Chapter struct {
	ID          string `json:"id"`
	StoryID     string `json:"storyId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Order       int    `json:"order"`
	PublishedAt int64  `json:"publishedAt"` // epoch milliseconds
}

// Filter narrows a story listing.
type Filter struct {
	Query string // case-insensitive substring of title or genre
	Genre string // exact genre, empty or GenreAll for any
}

// PublishResult reports the outcome of a full story publish.
type PublishResult struct {
	Story    Story     `json:"story"`
	Chapters []Chapter `json:"chapters"`
}

// Validation field names
const (
	FieldTitle    = "title"
	FieldGenre    = "genre"
	FieldSynopsis = "synopsis"
	FieldStatus   = "status"
	FieldCoverURL = "coverUrl"
	FieldStoryID  = "storyId"
	FieldOrder    = "order"
	FieldChapters = "chapters"
)
