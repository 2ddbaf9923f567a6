// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open connects to the database and verifies the connection with a ping.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	// Both drivers register under the same name as the type
	if dbType != TypeSQLite && dbType != TypePostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatabaseType, dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// Migrate applies all pending embedded migrations.
// Safe to call on every start - applied versions are tracked by goose.
func Migrate(ctx context.Context, conn *sql.DB, dbType string) error {
	var dialect database.Dialect
	switch dbType {
	case TypeSQLite:
		dialect = database.DialectSQLite3
	case TypePostgres:
		dialect = database.DialectPostgres
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDatabaseType, dbType)
	}

	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, conn, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		slog.Info("migration applied",
			"version", r.Source.Version,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}

	return nil
}
