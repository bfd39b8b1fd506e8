// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/novelia/internal/platform/apperr"
	"github.com/taibuivan/novelia/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "The Brass Key", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_URL checks the cover URL rule.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"empty_is_allowed", "", true},
		{"https", "https://picsum.photos/300/450", true},
		{"relative", "/covers/1.png", false},
		{"javascript", "javascript:alert(1)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("coverUrl", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").
		OneOf("status", "Paused", "Ongoing", "Completed").
		Range("fontSize", 40, 12, 32).
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
