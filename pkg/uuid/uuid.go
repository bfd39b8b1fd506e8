// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates identifiers for new stories, chapters and requests.

Version 7 values are used so that freshly created records sort by creation
time. Identifiers are stored as plain text: records created before this
service existed (for example the demo catalogue) keep their short ids.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// IsUUID reports whether s parses as a UUID of any version.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
