// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command novelia runs the Novelia publishing server and its maintenance tools.
//
//	novelia serve              start the HTTP API
//	novelia migrate up|down    manage the remote schema
//	novelia stories            list the catalogue
//	novelia chapters <story>   list a story's chapters
//	novelia seed               write the demo catalogue into an empty local store
//	novelia ai ping            check the generative-text API
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
