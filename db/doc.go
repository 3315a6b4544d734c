// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and the multi-database registry.

# Schema Creation

CreateSchema initializes both required tables:

	if err := db.CreateSchema(conn); err != nil {
		slog.Warn("schema creation failed", "error", err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. A provisioning failure is logged and the service continues;
individual data operations fail later if the schema is absent.

# Tables

  - proposals: One customer quote, with the ordered service list
    serialized into the services column as JSON
  - proposal_services: The same service lines as independent rows,
    written alongside the parent for analytics

# Relationships

	proposals 1──* proposal_services

The foreign key has no ON DELETE CASCADE, so deletes remove child rows
before the parent.

# Registry

Registry holds one open handle per logical database name:

	reg := db.NewRegistry()
	reg.Register(db.ProposalsDB, conn)
	rows, err := reg.Query(db.ProposalsDB, "SELECT ...", args...)

Query returns generic column->value row maps so callers can dispatch
against any registered backend. Requesting an unregistered name fails
immediately with an error naming the database.
*/
package db
