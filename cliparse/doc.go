// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: Postgres connection string or SQLite file (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKey: Shared secret for admin routes (required)
  - LogLevel: debug, info, warn or error (default: info)

# Sources

Values are read in order, later sources winning:

 1. .env file in the working directory (optional)
 2. Environment variables
 3. CLI flags

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-admin-key   Admin key
	-log-level   Log level

# Environment Variables

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_KEY     → -admin-key
	LOG_LEVEL     → -log-level

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - ADMIN_KEY is missing
  - DATABASE_TYPE is not sqlite or postgres
  - LOG_LEVEL is not a slog level name
*/
package cliparse
