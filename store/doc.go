// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements CRUD and status-transition operations over the
proposals entity and its service lines.

# Operations

	id, err := store.Create(conn, req)
	all, err := store.ListAll(conn)
	p, err := store.GetByID(conn, id)      // store.ErrNotFound on no match
	n, err := store.UpdateStatus(conn, id, status, notes)
	n, err := store.Delete(conn, id)

All functions operate on the process-wide *sql.DB injected by the
caller; the store owns no connection state of its own.

# Dual Representation

A proposal's services are written twice at creation time: serialized as
a JSON blob on the parent row, and as independent proposal_services rows
for the analytics aggregation. The two representations are never
reconciled afterwards - no update path mutates services. This is
intentional duplication, not drift to be repaired.

# Weak Consistency

Create inserts the parent row, then fires each service-line insert
individually; a failed line is logged and the parent stands. Delete
removes service lines first, then the parent, without a transaction.
Both choices mirror the accepted failure modes of the system: an orphan
row is tolerable, a lost parent is not.

# Errors

A lookup that matches nothing returns ErrNotFound. Everything else is a
data-layer fault passed through verbatim.
*/
package store
