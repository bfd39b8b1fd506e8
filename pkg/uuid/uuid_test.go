// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/novelia/pkg/uuid"
)

func TestNew(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	assert.NotEqual(t, first, second)
	assert.True(t, uuid.IsUUID(first))
	assert.Equal(t, byte('7'), first[14], "version nibble")
}

func TestIsUUID(t *testing.T) {
	assert.False(t, uuid.IsUUID("c1"))
	assert.False(t, uuid.IsUUID(""))
	assert.True(t, uuid.IsUUID("0190f0b4-8c1e-7a3b-9d2e-1f4a5b6c7d8e"))
}
