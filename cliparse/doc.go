// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3001)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string; defaults to file:menu_survey.db for
    sqlite, required for postgres
  - AdminKey: shared secret for the admin surface (required)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	--admin-key  Admin API key

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_KEY     → --admin-key

CLI flags take precedence over environment variables. main loads a .env file
via godotenv before parsing, so a local .env works for development.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided for postgres
  - ADMIN_KEY must be provided
*/
package cliparse
