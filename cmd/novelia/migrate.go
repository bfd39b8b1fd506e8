// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/novelia/internal/platform/migration"
)

var errRemoteNotConfigured = errors.New("DATABASE_URL is not set; the remote store is disabled")

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the remote PostgreSQL schema",
	}

	runner := func(cmd *cobra.Command) (*migration.Runner, error) {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return nil, err
		}
		if !cfg.RemoteEnabled() {
			return nil, errRemoteNotConfigured
		}
		logger := newLogger(cmd.ErrOrStderr(), slog.LevelInfo)
		return migration.NewRunner(cfg.DatabaseURL, cfg.MigrationPath, logger), nil
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner(cmd)
			if err != nil {
				return err
			}
			return r.Up()
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner(cmd)
			if err != nil {
				return err
			}
			return r.Down()
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner(cmd)
			if err != nil {
				return err
			}
			version, dirty, err := r.Version()
			if err != nil {
				return err
			}
			state := "clean"
			if dirty {
				state = "dirty"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (%s)\n", version, state)
			return nil
		},
	})

	return migrateCmd
}
