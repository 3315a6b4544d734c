// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

NewRouter wires all handlers onto a ServeMux using Go 1.22+ method and
path patterns:

	mux := router.NewRouter(conn, registry, cfg)

	POST   /api/proposals             Submit a proposal
	GET    /api/proposals             List all (admin secret required)
	GET    /api/proposals/{id}        Get one
	PUT    /api/proposals/{id}/status Update status and notes
	DELETE /api/proposals/{id}        Delete with its service lines
	GET    /api/analytics             Aggregate report
	GET    /api/export                CSV download
	GET    /api/search                Federated search
	GET    /health                    Liveness check

Every API route is wrapped in the logging middleware. The caller is
expected to wrap the returned mux in middleware.CORS before serving.
*/
package router
