// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/novelia/internal/platform/constants"
)

func newRootCommand() *cobra.Command {
	var envFile string

	ctx := newCommandContext(&envFile)

	rootCmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Novelia personal publishing server",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (default .env in the working directory)")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newMigrateCommand(ctx))
	rootCmd.AddCommand(newStoriesCommand(ctx))
	rootCmd.AddCommand(newChaptersCommand(ctx))
	rootCmd.AddCommand(newSeedCommand(ctx))
	rootCmd.AddCommand(newAICommand(ctx))

	return rootCmd
}
