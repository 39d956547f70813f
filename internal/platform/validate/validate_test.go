// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	"github.com/adriaferrer/kiroku/internal/platform/validate"
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
		{"valid_string", "title", "Elden Ring", false},
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
TestValidator_Month checks the YYYY-MM month-key rule.
*/
func TestValidator_Month(t *testing.T) {
	tests := []struct {
		name    string
		month   string
		isValid bool
	}{
		{"valid", "2026-01", true},
		{"valid_december", "2026-12", true},
		{"month_thirteen", "2026-13", false},
		{"month_zero", "2026-00", false},
		{"missing_zero_pad", "2026-1", false},
		{"full_date", "2026-01-15", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Month("month", tt.month)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Cover accepts remote URLs and local paths, rejects garbage.
*/
func TestValidator_Cover(t *testing.T) {
	tests := []struct {
		name    string
		cover   string
		isValid bool
	}{
		{"remote_https", "https://cdn.example.com/x.png", true},
		{"remote_http", "http://cdn.example.com/x.png", true},
		{"local_path", "/img/covers/elden-ring.png", true},
		{"empty", "", true},
		{"relative_garbage", "covers/x.png", false},
		{"wrong_scheme", "ftp://cdn.example.com/x.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Cover("cover", tt.cover)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}
