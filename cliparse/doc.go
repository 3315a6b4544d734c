// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first if present
(github.com/joho/godotenv), then CLI flags, then process environment.

# Config Fields

  - Port: Server listen port (default: 4004)
  - DatabasePath: SQLite database file (default: proposals.db)
  - AdminSecret: Shared secret for the admin list endpoint (required)
  - ReportingDatabaseURL: Optional postgres URL for the reporting handle

# CLI Flags

	-p             Server port
	-d             SQLite database path
	-admin-secret  Admin shared secret
	-reporting-db  Reporting database URL

# Environment Variables

Flags fall back to environment variables:

	PORT                   → -p
	DATABASE_PATH          → -d
	ADMIN_SECRET           → -admin-secret
	REPORTING_DATABASE_URL → -reporting-db

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if ADMIN_SECRET is missing; everything else
has a workable default.
*/
package cliparse
