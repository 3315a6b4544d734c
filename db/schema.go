// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates both proposal tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB) error {
	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Proposals
CREATE TABLE IF NOT EXISTS proposals (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    operation_name TEXT NOT NULL,
    field_count INTEGER,
    acreage REAL,
    crop_type TEXT,
    start_date TEXT,
    finish_date TEXT,
    email TEXT NOT NULL,
    phone TEXT,
    services TEXT,
    subtotal TEXT,
    discount TEXT,
    total TEXT,
    status TEXT NOT NULL DEFAULT 'pending',
    notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_proposals_created_at ON proposals(created_at);
CREATE INDEX IF NOT EXISTS idx_proposals_status ON proposals(status);

-- Service lines, persisted independently of the parent services blob.
-- No ON DELETE CASCADE: deletes must remove child rows first.
CREATE TABLE IF NOT EXISTS proposal_services (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    proposal_id INTEGER NOT NULL REFERENCES proposals(id),
    service_name TEXT NOT NULL,
    rate TEXT,
    cost TEXT
);

CREATE INDEX IF NOT EXISTS idx_proposal_services_proposal_id ON proposal_services(proposal_id);
`
