// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package catalog_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/novelia/internal/catalog"
	"github.com/taibuivan/novelia/internal/platform/dberr"
	"github.com/taibuivan/novelia/internal/platform/kv"
	"github.com/taibuivan/novelia/internal/platform/migration"
)

type PostgresStoreSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	store     *catalog.PostgresStore
	service   *catalog.Service
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("novelia"),
		postgres.WithUsername("novelia"),
		postgres.WithPassword("novelia"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(2*time.Minute),
		),
	)
	require.NoError(s.T(), err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	require.NoError(s.T(), migration.NewRunner(dsn, "", logger).Up())

	s.pool, err = pgxpool.New(ctx, dsn)
	require.NoError(s.T(), err)

	s.store = catalog.NewPostgresStore(s.pool)
	local := catalog.NewLocalStore(kv.NewMemory(), logger)
	s.service = catalog.NewService(s.store, local, 5*time.Second, logger)
}

func (s *PostgresStoreSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE chapters, stories`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestUpsertIsIdempotent() {
	ctx := context.Background()
	story := catalog.Story{ID: "s1", Title: "One", Genre: "Drama", Synopsis: "First.", CreatedAt: 1_700_000_000_000}

	_, err := s.service.SaveStory(ctx, story)
	s.Require().NoError(err)

	story.Title = "One, again"
	_, err = s.service.SaveStory(ctx, story)
	s.Require().NoError(err)

	rows, err := s.store.ListStories(ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("One, again", rows[0].Title)
	s.Equal("2023-11-14T22:13:20Z", rows[0].CreatedAt)
}

func (s *PostgresStoreSuite) TestChapterOrderingAndTies() {
	ctx := context.Background()
	_, err := s.service.SaveStory(ctx, catalog.Story{ID: "s", Title: "T", Genre: "G", Synopsis: "S"})
	s.Require().NoError(err)

	for _, chapter := range []catalog.Chapter{
		{ID: "c3", StoryID: "s", Title: "three", Order: 3},
		{ID: "c1", StoryID: "s", Title: "one", Order: 1},
		{ID: "c2a", StoryID: "s", Title: "two-a", Order: 2},
		{ID: "c2b", StoryID: "s", Title: "two-b", Order: 2},
	} {
		_, err := s.service.SaveChapter(ctx, chapter)
		s.Require().NoError(err)
	}

	var got []string
	for _, chapter := range s.service.ListChaptersByStory(ctx, "s") {
		got = append(got, chapter.Title)
	}
	s.Equal([]string{"one", "two-a", "two-b", "three"}, got)
}

func (s *PostgresStoreSuite) TestDeleteStoryCascades() {
	ctx := context.Background()
	_, err := s.service.PublishStory(ctx,
		catalog.Story{ID: "gone", Title: "T", Genre: "G", Synopsis: "S"},
		[]catalog.Chapter{{Title: "a"}, {Title: "b"}},
	)
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteStory(ctx, "gone"))

	rows, err := s.store.ListChapters(ctx, "gone")
	s.Require().NoError(err)
	s.Empty(rows)

	_, err = s.store.GetStory(ctx, "gone")
	s.ErrorIs(err, catalog.ErrNotFound)
}

func (s *PostgresStoreSuite) TestConstraintViolationIsInvalidRequest() {
	ctx := context.Background()

	err := s.store.UpsertStory(ctx, catalog.StoryRow{
		ID: "bad", Title: "T", Genre: "G", Synopsis: "S", Status: "Paused",
		CreatedAt: "2024-01-01T00:00:00Z",
	})
	s.Require().Error(err)
	s.True(dberr.IsInvalidRequest(err))

	err = s.store.UpsertChapter(ctx, catalog.ChapterRow{
		ID: "orphan", StoryID: "missing", Title: "x", PublishedAt: "2024-01-01T00:00:00Z",
	})
	s.Require().Error(err)
	s.True(dberr.IsInvalidRequest(err))
}
