// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Logical database names. ProposalsDB is always registered; ReportingDB
// is provisioned when configured but currently has no callers.
const (
	ProposalsDB = "proposals"
	ReportingDB = "reporting"
)

// Registry maps logical database names to open handles. Handles are
// registered once at startup and owned by the registry until Close.
type Registry struct {
	handles map[string]*sql.DB
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]*sql.DB)}
}

// Register adds a handle under the given logical name. Re-registering a
// name replaces the previous handle without closing it.
func (r *Registry) Register(name string, handle *sql.DB) {
	if _, exists := r.handles[name]; !exists {
		r.order = append(r.order, name)
	}
	r.handles[name] = handle
}

// Get returns the handle for the given logical name.
func (r *Registry) Get(name string) (*sql.DB, error) {
	handle, ok := r.handles[name]
	if !ok {
		return nil, fmt.Errorf("unknown database %q", name)
	}
	return handle, nil
}

// Names returns the registered logical names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Query dispatches a parameterized query against the named handle and
// returns the result rows as generic column-name -> value maps. An
// unregistered name fails before any handle is touched.
func (r *Registry) Query(name, query string, args ...any) ([]map[string]any, error) {
	handle, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	rows, err := handle.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query on %q failed: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query on %q failed: %w", name, err)
	}

	results := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("query on %q failed: %w", name, err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// Close closes every registered handle. Errors are logged; the first
// one is returned.
func (r *Registry) Close() error {
	var first error
	for _, name := range r.order {
		if err := r.handles[name].Close(); err != nil {
			slog.Error("failed to close database", "name", name, "error", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
