// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_KEY", "secret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "secret", cfg.AdminKey)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseFlags_Defaults(t *testing.T) {
	unsetenv(t, "PORT", "DATABASE_TYPE", "LOG_LEVEL")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("ADMIN_KEY", "secret")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	unsetenv(t, "DATABASE_TYPE", "LOG_LEVEL")
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_KEY", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8081", "-d", "file:test.db", "-admin-key", "from-cli"})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "from-cli", cfg.AdminKey)
}

func TestParseFlags_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing database url", []string{"-admin-key", "k"}},
		{"missing admin key", []string{"-d", "file:test.db"}},
		{"unknown database type", []string{"-d", "file:test.db", "-admin-key", "k", "-t", "mysql"}},
		{"unknown log level", []string{"-d", "file:test.db", "-admin-key", "k", "-log-level", "loud"}},
		{"unknown flag", []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetenv(t, "PORT", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_KEY", "LOG_LEVEL")

			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	unsetenv(t, "DATABASE_TYPE", "LOG_LEVEL")
	t.Setenv("PORT", "not-a-number")

	_, err := ParseFlags([]string{"-d", "file:test.db", "-admin-key", "k"})
	assert.Error(t, err)
}
