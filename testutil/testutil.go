// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-pair/auth"
	"github.com/danielhkuo/quickly-pair/cliparse"
	"github.com/danielhkuo/quickly-pair/db"
	"github.com/danielhkuo/quickly-pair/models"
	"github.com/danielhkuo/quickly-pair/pairing"
)

// TestAdminKey is the admin key used by GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestDB creates a fresh SQLite database in a temp dir with all migrations applied
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(ctx, conn, db.TypeSQLite), "failed to migrate test database")

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.TypeSQLite,
		AdminKey:     TestAdminKey,
		LogLevel:     "info",
	}
}

// AdminHeaders returns headers authenticating as admin
func AdminHeaders() map[string]string {
	return map[string]string{auth.AdminKeyHeader: TestAdminKey}
}

// CreateTestMembers adds members by name and returns them in insertion order
func CreateTestMembers(t *testing.T, store db.Store, names ...string) []models.Member {
	t.Helper()

	members := make([]models.Member, 0, len(names))
	for _, name := range names {
		m, err := store.CreateMember(context.Background(), name)
		require.NoError(t, err, "failed to create test member %q", name)
		members = append(members, m)
	}
	return members
}

// CreateTestPairing inserts a round with an explicit timestamp and returns its ID
func CreateTestPairing(t *testing.T, conn *sql.DB, createdAt time.Time, pairs ...pairing.Pair) string {
	t.Helper()

	pairingID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO pairing (id, round_date, created_at)
		VALUES ($1, $2, $3)
	`, pairingID, createdAt.UTC(), createdAt.UTC())
	require.NoError(t, err, "failed to create test pairing")

	for i, p := range pairs {
		_, err := conn.Exec(`
			INSERT INTO pairing_pair (pairing_id, position, left_name, right_name)
			VALUES ($1, $2, $3, $4)
		`, pairingID, i, p.Left(), p.Right())
		require.NoError(t, err, "failed to create test pair")
	}

	return pairingID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	require.Equal(t, expected, w.Code, "unexpected status, body: %s", w.Body.String())
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v), "failed to decode JSON response")
}
