// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Store types
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

const (
	DefaultPort     = 3000
	DefaultDataFile = "data/submissions.json"
)

type Config struct {
	Port          int
	StoreType     string
	DataFile      string
	DatabaseURL   string
	AdminKey      string
	ReloadOnWrite bool
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("prompt-battle", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "s", "", "Store type (file, sqlite or postgres)")
	fs.StringVar(&cfg.DataFile, "f", "", "Snapshot file for the file store")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite or postgres stores")
	fs.BoolVar(&cfg.ReloadOnWrite, "reload", false, "Reload the snapshot before every write")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin key required for deletes (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreFile
		}
	}
	switch cfg.StoreType {
	case StoreFile, StoreSQLite, StorePostgres:
	default:
		return Config{}, fmt.Errorf("invalid store type %q (use file, sqlite or postgres)", cfg.StoreType)
	}

	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("DATA_FILE")
		if cfg.DataFile == "" {
			cfg.DataFile = DefaultDataFile
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.StoreType != StoreFile && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for " + cfg.StoreType + " store (use -d or DATABASE_URL env)")
	}

	if !cfg.ReloadOnWrite {
		if v := os.Getenv("RELOAD_ON_WRITE"); v != "" {
			reload, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid RELOAD_ON_WRITE env variable")
			}
			cfg.ReloadOnWrite = reload
		}
	}

	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}

	return cfg, nil
}
