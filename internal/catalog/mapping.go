// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "time"

// StoryRow is the remote row shape of a story. Only this package builds rows.
type StoryRow struct {
	ID        string
	Title     string
	Genre     string
	Synopsis  string
	Author    string
	AuthorBio string
	CoverURL  string
	Status    string
	CreatedAt string // ISO-8601
}

// ChapterRow is the remote row shape of a chapter.
type ChapterRow struct {
	ID          string
	StoryID     string
	Title       string
	Content     string
	OrderIndex  int
	PublishedAt string // ISO-8601
}

func storyToRow(story Story) StoryRow {
	return StoryRow{
		ID:        story.ID,
		Title:     story.Title,
		Genre:     story.Genre,
		Synopsis:  story.Synopsis,
		Author:    story.Author,
		AuthorBio: story.AuthorBio,
		CoverURL:  story.CoverURL,
		Status:    string(story.Status),
		CreatedAt: millisToISO(story.CreatedAt),
	}
}

func storyFromRow(row StoryRow) Story {
	status := Status(row.Status)
	if status == "" {
		status = StatusOngoing
	}
	return Story{
		ID:        row.ID,
		Title:     row.Title,
		Genre:     row.Genre,
		Synopsis:  row.Synopsis,
		Author:    row.Author,
		AuthorBio: row.AuthorBio,
		CoverURL:  row.CoverURL,
		Status:    status,
		CreatedAt: isoToMillis(row.CreatedAt),
	}
}

func chapterToRow(chapter Chapter) ChapterRow {
	return ChapterRow{
		ID:          chapter.ID,
		StoryID:     chapter.StoryID,
		Title:       chapter.Title,
		Content:     chapter.Content,
		OrderIndex:  chapter.Order,
		PublishedAt: millisToISO(chapter.PublishedAt),
	}
}

func chapterFromRow(row ChapterRow) Chapter {
	return Chapter{
		ID:          row.ID,
		StoryID:     row.StoryID,
		Title:       row.Title,
		Content:     row.Content,
		Order:       row.OrderIndex,
		PublishedAt: isoToMillis(row.PublishedAt),
	}
}

func millisToISO(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(time.RFC3339Nano)
}

// isoToMillis returns 0 for empty or unparseable input.
func isoToMillis(iso string) int64 {
	if iso == "" {
		return 0
	}
	parsed, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return 0
	}
	return parsed.UnixMilli()
}
