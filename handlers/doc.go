// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the proposal API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ProposalHandler: Submit, admin list, get, status update, delete
  - AnalyticsHandler: Combined aggregate report
  - ExportHandler: CSV download of the full collection
  - SearchHandler: Federated search through the database registry

Handlers are created via constructor functions:

	proposalHandler := handlers.NewProposalHandler(conn, cfg)
	searchHandler := handlers.NewSearchHandler(registry, cfg)

# Proposal Lifecycle

A proposal is created once, its status/notes mutate freely afterwards,
and it is destroyed by explicit deletion:

	POST   /api/proposals             → Submit
	GET    /api/proposals             → List (X-Admin-Secret header)
	GET    /api/proposals/{id}        → Get
	PUT    /api/proposals/{id}/status → UpdateStatus
	DELETE /api/proposals/{id}       → Delete

# Analytics

The aggregate report is computed in analytics.go:

	report := ComputeAnalytics(conn)

Five sub-queries (count, total value, average acreage, top services,
recent proposals) run concurrently; a failed sub-query yields a null
key in the response rather than failing the whole report. Currency text
is parsed with shopspring/decimal after stripping formatting, and
unparseable totals contribute zero.

# Export

FormatProposalsCSV renders the fixed twelve-column table. Quote
characters embedded in text fields are not escaped (known limitation).

# Federated Search

	GET /api/search?q=smith

Matches operation name or email by substring against the "proposals"
logical database via db.Registry, returning rows keyed by database name.
*/
package handlers
