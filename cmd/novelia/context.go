// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/novelia/internal/app"
	"github.com/taibuivan/novelia/internal/platform/config"
	"github.com/taibuivan/novelia/internal/platform/constants"
)

// commandContext loads configuration once per invocation.
type commandContext struct {
	envFile *string
	config  *config.Config
}

func newCommandContext(envFile *string) *commandContext {
	return &commandContext{envFile: envFile}
}

func (ctx *commandContext) ensureConfig() (*config.Config, error) {
	if ctx.config != nil {
		return ctx.config, nil
	}

	var files []string
	if *ctx.envFile != "" {
		files = append(files, *ctx.envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	ctx.config = cfg
	return cfg, nil
}

// withApp builds the application, runs fn and closes it. Maintenance commands
// log warnings only, to stderr, so their tables stay readable.
func (ctx *commandContext) withApp(cmd *cobra.Command, fn func(*app.App) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), slog.LevelWarn)
	application, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	return fn(application)
}

// newLogger returns the JSON logger every entry point uses.
func newLogger(writer io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}
