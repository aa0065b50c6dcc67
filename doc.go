// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Prompt Battle API server.

Prompt Battle is a workshop voting game: participants submit prompts, the
room votes on them (one toggleable vote per user per prompt), and the top
three are shown on a live podium. Results can be exported as CSV.

# Starting the Server

With the defaults, submissions are kept in data/submissions.json:

	go run .

Or with flags:

	go run . -p 8080 -f /var/lib/prompt-battle/submissions.json
	go run . -s postgres -d "postgres://..."

A .env file in the working directory is loaded when present.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - STORE_TYPE (-s): file, sqlite or postgres (default: file)
  - DATA_FILE (-f): Snapshot file for the file store
  - DATABASE_URL (-d): Connection string for sqlite or postgres
  - ADMIN_KEY (-admin-key): Required as X-Admin-Key for deletes when set
  - RELOAD_ON_WRITE (-reload): Re-read the snapshot before each write

# Architecture

  - store: In-memory submission store with snapshot persistence
  - handlers: HTTP request handlers (submissions, voting, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain, request and response types
  - auth: Voter ids and admin key checks
  - db: Database connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
