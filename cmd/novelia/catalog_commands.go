// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/novelia/internal/app"
	"github.com/taibuivan/novelia/internal/catalog"
	"github.com/taibuivan/novelia/internal/platform/kv"
)

func newStoriesCommand(ctx *commandContext) *cobra.Command {
	var query, genre string

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List stories, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(application *app.App) error {
				stories := application.Catalog.SearchStories(cmd.Context(), catalog.Filter{Query: query, Genre: genre})
				if len(stories) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No stories")
					return nil
				}

				rows := make([][]string, 0, len(stories))
				for _, story := range stories {
					rows = append(rows, []string{
						story.ID,
						story.Title,
						story.Genre,
						string(story.Status),
						formatMillis(story.CreatedAt),
					})
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title", "Genre", "Status", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by title or genre substring")
	cmd.Flags().StringVar(&genre, "genre", "", "Filter by genre")
	return cmd
}

func newChaptersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chapters <story-id>",
		Short: "List a story's chapters in reading order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(application *app.App) error {
				chapters := application.Catalog.ListChaptersByStory(cmd.Context(), args[0])
				if len(chapters) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No chapters for story %s\n", args[0])
					return nil
				}

				rows := make([][]string, 0, len(chapters))
				for _, chapter := range chapters {
					rows = append(rows, []string{
						strconv.Itoa(chapter.Order),
						chapter.ID,
						chapter.Title,
						formatMillis(chapter.PublishedAt),
					})
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable(
					[]string{"#", "ID", "Title", "Published"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

// newSeedCommand seeds without building the whole app, so it works before
// any remote is reachable.
func newSeedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the demo catalogue into any empty local collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := kv.OpenSQLite(cmd.Context(), cfg.LocalDBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			logger := newLogger(cmd.ErrOrStderr(), slog.LevelInfo)
			if err := catalog.NewLocalStore(store, logger).Seed(cmd.Context(), time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Local store ready at %s\n", store.Path())
			return nil
		},
	}
}

func formatMillis(millis int64) string {
	if millis == 0 {
		return "-"
	}
	return time.UnixMilli(millis).UTC().Format("2006-01-02 15:04")
}
