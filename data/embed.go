// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package data embeds the remote store's SQL migrations into the binary.
package data

import "embed"

// Migrations holds the golang-migrate files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
