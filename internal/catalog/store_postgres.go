// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/novelia/internal/platform/database/schema"
	"github.com/taibuivan/novelia/internal/platform/dberr"
)

// PostgresStore is the [RemoteStore] backed by PostgreSQL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore returns a remote store over an established pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// # Stories

var (
	storySelect = fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.Stories.Columns(), ", "), schema.Stories.Table,
	)

	storyUpsert = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.Stories.Table, strings.Join(schema.Stories.Columns(), ", "),
		schema.Stories.ID,
		schema.Stories.Title, schema.Stories.Title,
		schema.Stories.Genre, schema.Stories.Genre,
		schema.Stories.Synopsis, schema.Stories.Synopsis,
		schema.Stories.Author, schema.Stories.Author,
		schema.Stories.AuthorBio, schema.Stories.AuthorBio,
		schema.Stories.CoverURL, schema.Stories.CoverURL,
		schema.Stories.Status, schema.Stories.Status,
		schema.Stories.CreatedAt, schema.Stories.CreatedAt,
	)
)

// ListStories returns every story, newest first.
func (store *PostgresStore) ListStories(ctx context.Context) ([]StoryRow, error) {
	query := storySelect + fmt.Sprintf(` ORDER BY %s DESC`, schema.Stories.CreatedAt)

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list_stories: %w", err)
	}
	defer rows.Close()

	stories := []StoryRow{}
	for rows.Next() {
		row, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan_story: %w", err)
		}
		stories = append(stories, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list_stories: %w", err)
	}
	return stories, nil
}

// GetStory looks up one story by id.
func (store *PostgresStore) GetStory(ctx context.Context, id string) (StoryRow, error) {
	query := storySelect + fmt.Sprintf(` WHERE %s = $1`, schema.Stories.ID)

	row, err := scanStory(store.db.QueryRow(ctx, query, id))
	if dberr.IsNotFound(err) {
		return StoryRow{}, ErrNotFound
	}
	if err != nil {
		return StoryRow{}, fmt.Errorf("get_story: %w", err)
	}
	return row, nil
}

// UpsertStory inserts the story or replaces every field of an existing one.
func (store *PostgresStore) UpsertStory(ctx context.Context, row StoryRow) error {
	_, err := store.db.Exec(ctx, storyUpsert,
		row.ID, row.Title, row.Genre, row.Synopsis, row.Author, row.AuthorBio,
		row.CoverURL, row.Status, parseISO(row.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert_story: %w", err)
	}
	return nil
}

// DeleteStory removes the story's chapters and then the story inside one transaction.
// Chapters are deleted explicitly so the outcome does not depend on the foreign key cascade.
func (store *PostgresStore) DeleteStory(ctx context.Context, id string) error {
	err := pgx.BeginFunc(ctx, store.db, func(tx pgx.Tx) error {
		chapterQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Chapters.Table, schema.Chapters.StoryID)
		if _, err := tx.Exec(ctx, chapterQuery, id); err != nil {
			return err
		}

		storyQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Stories.Table, schema.Stories.ID)
		_, err := tx.Exec(ctx, storyQuery, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete_story: %w", err)
	}
	return nil
}

// # Chapters

var (
	chapterSelect = fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.Chapters.Columns(), ", "), schema.Chapters.Table,
	)

	chapterUpsert = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.Chapters.Table, strings.Join(schema.Chapters.Columns(), ", "),
		schema.Chapters.ID,
		schema.Chapters.StoryID, schema.Chapters.StoryID,
		schema.Chapters.Title, schema.Chapters.Title,
		schema.Chapters.Content, schema.Chapters.Content,
		schema.Chapters.OrderIndex, schema.Chapters.OrderIndex,
		schema.Chapters.PublishedAt, schema.Chapters.PublishedAt,
	)
)

// ListChapters returns a story's chapters in reading order. Equal order values
// keep their insertion order.
func (store *PostgresStore) ListChapters(ctx context.Context, storyID string) ([]ChapterRow, error) {
	query := chapterSelect + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		schema.Chapters.StoryID, schema.Chapters.OrderIndex, schema.Chapters.Seq,
	)

	rows, err := store.db.Query(ctx, query, storyID)
	if err != nil {
		return nil, fmt.Errorf("list_chapters: %w", err)
	}
	defer rows.Close()

	chapters := []ChapterRow{}
	for rows.Next() {
		row, err := scanChapter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan_chapter: %w", err)
		}
		chapters = append(chapters, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list_chapters: %w", err)
	}
	return chapters, nil
}

// GetChapter looks up one chapter by id.
func (store *PostgresStore) GetChapter(ctx context.Context, id string) (ChapterRow, error) {
	query := chapterSelect + fmt.Sprintf(` WHERE %s = $1`, schema.Chapters.ID)

	row, err := scanChapter(store.db.QueryRow(ctx, query, id))
	if dberr.IsNotFound(err) {
		return ChapterRow{}, ErrNotFound
	}
	if err != nil {
		return ChapterRow{}, fmt.Errorf("get_chapter: %w", err)
	}
	return row, nil
}

// UpsertChapter inserts the chapter or replaces every field of an existing one.
func (store *PostgresStore) UpsertChapter(ctx context.Context, row ChapterRow) error {
	_, err := store.db.Exec(ctx, chapterUpsert,
		row.ID, row.StoryID, row.Title, row.Content, row.OrderIndex, parseISO(row.PublishedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert_chapter: %w", err)
	}
	return nil
}

// DeleteChapter removes one chapter. Deleting a missing chapter is not an error.
func (store *PostgresStore) DeleteChapter(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Chapters.Table, schema.Chapters.ID)
	if _, err := store.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete_chapter: %w", err)
	}
	return nil
}

// # Scanning

func scanStory(row pgx.Row) (StoryRow, error) {
	var (
		story     StoryRow
		createdAt time.Time
	)
	err := row.Scan(
		&story.ID, &story.Title, &story.Genre, &story.Synopsis, &story.Author,
		&story.AuthorBio, &story.CoverURL, &story.Status, &createdAt,
	)
	story.CreatedAt = formatISO(createdAt)
	return story, err
}

func scanChapter(row pgx.Row) (ChapterRow, error) {
	var (
		chapter     ChapterRow
		publishedAt time.Time
	)
	err := row.Scan(
		&chapter.ID, &chapter.StoryID, &chapter.Title, &chapter.Content,
		&chapter.OrderIndex, &publishedAt,
	)
	chapter.PublishedAt = formatISO(publishedAt)
	return chapter, err
}

func formatISO(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

// parseISO falls back to the current time for rows without a usable timestamp.
func parseISO(iso string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return time.Now().UTC()
	}
	return parsed
}
