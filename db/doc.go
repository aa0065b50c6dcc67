// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL connections and creates the schema used by the SQL
snapshot persister.

# Connections

Open accepts "sqlite" (modernc.org/sqlite, pure Go) or "postgres"
(github.com/lib/pq) and pings before returning:

	conn, err := db.Open(db.TypeSQLite, "file:data/prompt-battle.db")

# Schema Creation

CreateSchema initializes the snapshot table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - store_snapshot: one row (id = 1) holding the JSON snapshot of the
    submission store and the time it was written
*/
package db
