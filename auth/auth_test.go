// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAdminKey(t *testing.T) {
	key, err := GenerateAdminKey()
	require.NoError(t, err)

	// 32 bytes base64 without padding
	assert.Len(t, key, 43)
	assert.False(t, strings.Contains(key, "="), "key contains padding characters")
	assert.False(t, strings.ContainsAny(key, "+/"), "key is not URL-safe")

	// Test randomness - should not produce duplicates
	keys := make(map[string]bool)
	for i := 0; i < 100; i++ {
		k, err := GenerateAdminKey()
		require.NoError(t, err)
		assert.False(t, keys[k], "duplicate key: %s", k)
		keys[k] = true
	}
}

func TestValidateAdminKey(t *testing.T) {
	expected := "test-admin-key"

	tests := []struct {
		name     string
		provided string
		wantErr  error
	}{
		{"valid key", expected, nil},
		{"wrong key", "wrong-key", ErrInvalidAdminKey},
		{"prefix of key", "test-admin", ErrInvalidAdminKey},
		{"longer key", expected + "x", ErrInvalidAdminKey},
		{"empty key", "", ErrMissingAdminKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.provided, expected)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func BenchmarkValidateAdminKey(b *testing.B) {
	expected := "test-admin-key"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ValidateAdminKey("wrong-admin-key", expected)
	}
}
