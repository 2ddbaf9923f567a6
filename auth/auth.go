// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// AdminKeyHeader carries the admin key on protected requests
const AdminKeyHeader = "X-Admin-Key"

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrMissingAdminKey = errors.New("missing admin key")
)

// GenerateAdminKey creates a random secret suitable for ADMIN_KEY
func GenerateAdminKey() (string, error) {
	b := make([]byte, 32) // 256 bits
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin key: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateAdminKey checks the provided key against the configured one.
// Both sides are hashed first so the comparison time does not depend on length.
func ValidateAdminKey(provided, expected string) error {
	if provided == "" {
		return ErrMissingAdminKey
	}
	if !hmac.Equal(digest(provided), digest(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

func digest(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}
