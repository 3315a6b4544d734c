// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the agriquote API server.

Agriquote accepts, stores, and reports on farming-service proposals:
customer quotes covering acreage, crops, services, and pricing, with an
administrator surface for managing and analyzing them.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	ADMIN_SECRET=... go run .

Or with flags:

	go run . -p 4004 -d proposals.db -admin-secret ...

# Configuration

Required settings:

  - ADMIN_SECRET (-admin-secret): Shared secret for the admin list endpoint

Optional settings:

  - PORT (-p): Server port (default: 4004)
  - DATABASE_PATH (-d): SQLite file (default: proposals.db)
  - REPORTING_DATABASE_URL (-reporting-db): Extra postgres handle for
    the database registry

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: Proposal CRUD and status transitions
  - handlers: HTTP request handlers (proposals, analytics, export, search)
  - db: Schema creation and the multi-database registry
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Credential verification
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
