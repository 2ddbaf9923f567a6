// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Pair API server.

Quickly Pair keeps a roster of members and draws random pairs from it
for each recitation round. Every round is stored, and new rounds prefer
combinations that have not been drawn before.

# Starting the Server

Configuration comes from a .env file, the environment, or CLI flags,
in increasing order of precedence:

	ADMIN_KEY=... DATABASE_URL=file:pair.db go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..." -admin-key ...

Generate a fresh admin key with:

	go run . keygen

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - ADMIN_KEY (-admin-key): Secret for roster and generation endpoints

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

  - pairing: Pair generation, usage tracking, group list formatting
  - handlers: HTTP request handlers (members, pairings)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin gate, JSON helpers
  - models: Request/response types
  - auth: Admin key generation and validation
  - db: Connection, goose migrations, Store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
