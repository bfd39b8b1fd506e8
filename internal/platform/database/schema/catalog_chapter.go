// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ChaptersTable represents the 'chapters' table
type ChaptersTable struct {
	Table       string
	ID          string
	StoryID     string
	Title       string
	Content     string
	OrderIndex  string
	PublishedAt string
	Seq         string
}

// Chapters is the schema definition for chapters
var Chapters = ChaptersTable{
	Table:       "chapters",
	ID:          "id",
	StoryID:     "story_id",
	Title:       "title",
	Content:     "content",
	OrderIndex:  "order_index",
	PublishedAt: "published_at",
	Seq:         "seq",
}

// Columns returns the writable columns in insert order. Seq is generated.
func (t ChaptersTable) Columns() []string {
	return []string{
		t.ID, t.StoryID, t.Title, t.Content, t.OrderIndex, t.PublishedAt,
	}
}
