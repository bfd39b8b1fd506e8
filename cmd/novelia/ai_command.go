// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/novelia/internal/app"
	"github.com/taibuivan/novelia/internal/translate"
)

func newAICommand(ctx *commandContext) *cobra.Command {
	aiCmd := &cobra.Command{
		Use:   "ai",
		Short: "Inspect the generative-text integration",
	}

	aiCmd.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "Check that the API key and endpoint work",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(application *app.App) error {
				if err := application.Translate.Ping(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Connected")
				return nil
			})
		},
	})

	aiCmd.AddCommand(&cobra.Command{
		Use:   "languages",
		Short: "List reader translation targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			languages := translate.Languages()
			rows := make([][]string, 0, len(languages))
			for _, lang := range languages {
				rows = append(rows, []string{lang.Code, lang.Name, lang.Native})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Code", "Name", "Native"}, rows, nil))
			return nil
		},
	})

	return aiCmd
}
