// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/novelia/internal/platform/constants"
)

// Seed writes the demo catalogue into any collection key that is entirely
// absent, so a first run does not open on an empty shelf. Existing keys are
// never touched, even when they hold an empty or corrupt list.
func (local *LocalStore) Seed(ctx context.Context, now time.Time) error {
	hasStories, err := local.Has(ctx, constants.KeyStories)
	if err != nil {
		return err
	}
	if !hasStories {
		if err := local.WriteStories(ctx, demoStories(now)); err != nil {
			return err
		}
		local.logger.Info("local_stories_seeded")
	}

	hasChapters, err := local.Has(ctx, constants.KeyChapters)
	if err != nil {
		return err
	}
	if !hasChapters {
		if err := local.WriteChapters(ctx, demoChapters(now)); err != nil {
			return err
		}
		local.logger.Info("local_chapters_seeded", slog.Int("count", 2))
	}

	return nil
}

func demoStories(now time.Time) []Story {
	return []Story{
		{
			ID:        "1",
			Title:     "The Clockwork Alchemist",
			Author:    "Julian Vane",
			AuthorBio: "Julian Vane is a connoisseur of steam, gears, and tea. Living in a renovated lighthouse, he writes stories that blend history with the impossible.",
			Synopsis:  "In a city powered by steam and gears, a young apprentice discovers a forbidden formula that could rewrite the laws of physics, or destroy reality itself.",
			CoverURL:  "https://picsum.photos/300/450?random=1",
			Genre:     "Sci-Fi",
			Status:    StatusOngoing,
			CreatedAt: now.UnixMilli(),
		},
		{
			ID:        "2",
			Title:     "Whispers of the Old Forest",
			Author:    "Elara Moon",
			AuthorBio: "Elara Moon grew up on the edge of a dense forest, which inspired her love for folklore and dark fantasy. She currently resides in the Pacific Northwest with her two cats.",
			Synopsis:  "The village elders warned them never to cross the river. But when the crops fail and sickness spreads, Elara has no choice but to seek the Witch of the Woods.",
			CoverURL:  "https://picsum.photos/300/450?random=2",
			Genre:     "Fantasy",
			Status:    StatusCompleted,
			CreatedAt: now.UnixMilli() - 10_000_000,
		},
	}
}

func demoChapters(now time.Time) []Chapter {
	return []Chapter{
		{
			ID:          "c1",
			StoryID:     "1",
			Title:       "Chapter 1: The Brass Key",
			Content:     `<p>The gears turned with a rhythmic thrum that vibrated through the floorboards of the workshop. Elian wiped the grease from his forehead, his eyes fixed on the small, intricate mechanism before him.</p><p>"It works," he whispered, hardly daring to believe it.</p><p>The brass key hummed with a faint blue light, a color that shouldn't exist in their world of copper and steam.</p>`,
			Order:       1,
			PublishedAt: now.UnixMilli(),
		},
		{
			ID:          "c2",
			StoryID:     "1",
			Title:       "Chapter 2: Pursuit",
			Content:     `<p>They came at night. Not the city guard, but the cloaked figures of the Guild.</p><p>Elian grabbed his satchel, stuffing the key inside just as the door burst open.</p>`,
			Order:       2,
			PublishedAt: now.UnixMilli(),
		},
	}
}
