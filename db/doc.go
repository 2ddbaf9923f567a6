// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, migrations, and storage.

# Connecting

Open selects the driver from the database type and pings it:

	conn, err := db.Open(ctx, db.TypePostgres, "postgres://...")
	conn, err := db.Open(ctx, db.TypeSQLite, "file:pairs.db")

Postgres uses github.com/lib/pq, SQLite uses modernc.org/sqlite (no cgo).

# Migrations

Migrate applies the SQL files embedded from migrations/ with goose:

	if err := db.Migrate(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call on every start. Applied versions are recorded in goose's
version table.

# Tables

  - member: roster entries, name is unique
  - pairing: one row per generated round
  - pairing_pair: the pairs of a round, in output order

# Relationships

	pairing 1──* pairing_pair

Pairs store member names rather than ids, so deleting a member keeps
history intact.

# Store

Handlers depend on the Store interface, never on *sql.DB:

	store := db.NewSQLStore(conn)
	members, err := store.ListMembers(ctx)

Errors:

  - ErrNotFound: unknown member or pairing id, or no pairing yet
  - ErrDuplicateName: member name already taken
*/
package db
