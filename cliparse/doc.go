// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - StoreType: file, sqlite or postgres (default: file)
  - DataFile: Snapshot file for the file store (default: data/submissions.json)
  - DatabaseURL: Connection string for sqlite or postgres stores
  - AdminKey: Required in X-Admin-Key for deletes when set
  - ReloadOnWrite: Re-read the snapshot before every mutation

# CLI Flags

	-p          Server port
	-s          Store type
	-f          Snapshot file
	-d          Database URL
	-admin-key  Admin key
	-reload     Reload before writes

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	STORE_TYPE      → -s
	DATA_FILE       → -f
	DATABASE_URL    → -d
	ADMIN_KEY       → -admin-key
	RELOAD_ON_WRITE → -reload

CLI flags take precedence over environment variables. main loads a .env
file into the environment before parsing.

# Validation

ParseFlags returns an error when:

  - PORT is not a number
  - the store type is unknown
  - a sqlite or postgres store has no database URL
*/
package cliparse
