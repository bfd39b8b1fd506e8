// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration provides a thin wrapper around golang-migrate for the
// remote content store schema.
//
// Migrations are embedded in the binary (see package data). A filesystem path
// may be supplied instead, which is convenient while editing SQL locally.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/taibuivan/novelia/data"
)

// Runner applies schema migrations to one database.
type Runner struct {
	dsn    string
	path   string
	logger *slog.Logger
}

// NewRunner returns a Runner for dsn. An empty path selects the embedded migrations.
func NewRunner(dsn, path string, logger *slog.Logger) *Runner {
	return &Runner{dsn: toPgx5DSN(dsn), path: path, logger: logger}
}

// Up applies all pending migrations. It is idempotent.
func (runner *Runner) Up() error {
	return runner.run("up", func(migrator *migrate.Migrate) error { return migrator.Up() })
}

// Down rolls back one migration step.
func (runner *Runner) Down() error {
	return runner.run("down", func(migrator *migrate.Migrate) error { return migrator.Steps(-1) })
}

// Version reports the applied schema version and whether it is dirty.
func (runner *Runner) Version() (uint, bool, error) {
	migrator, err := runner.open()
	if err != nil {
		return 0, false, err
	}
	defer runner.close(migrator)

	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migration: failed to get current version: %w", err)
	}
	return version, dirty, nil
}

func (runner *Runner) run(direction string, step func(*migrate.Migrate) error) error {
	migrator, err := runner.open()
	if err != nil {
		return err
	}
	defer runner.close(migrator)

	currentVersion, isDirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to get current version: %w", err)
	}
	if isDirty {
		return fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", currentVersion)
	}

	runner.logger.Info("migration_started",
		slog.String("direction", direction),
		slog.Int("current_version", int(currentVersion)),
	)

	if err := step(migrator); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			runner.logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: %s failed: %w", direction, err)
	}

	newVersion, _, _ := migrator.Version()
	runner.logger.Info("migration_successful",
		slog.Int("from_version", int(currentVersion)),
		slog.Int("to_version", int(newVersion)),
	)
	return nil
}

func (runner *Runner) open() (*migrate.Migrate, error) {
	var (
		migrator *migrate.Migrate
		err      error
	)

	if runner.path != "" {
		migrator, err = migrate.New("file://"+runner.path, runner.dsn)
	} else {
		source, sourceErr := iofs.New(data.Migrations, "migrations")
		if sourceErr != nil {
			return nil, fmt.Errorf("migration: failed to open embedded source: %w", sourceErr)
		}
		migrator, err = migrate.NewWithSourceInstance("iofs", source, runner.dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}

	migrator.Log = &migrateLogger{logger: runner.logger}
	return migrator, nil
}

func (runner *Runner) close(migrator *migrate.Migrate) {
	sourceError, dbError := migrator.Close()
	if sourceError != nil {
		runner.logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
	}
	if dbError != nil {
		runner.logger.Error("migration_db_close_failed", slog.Any("error", dbError))
	}
}

// toPgx5DSN rewrites postgres:// URLs to the pgx5:// scheme golang-migrate expects.
func toPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger *slog.Logger
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return false
}
