// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/agriquote/server/cliparse"
	"github.com/agriquote/server/db"
	"github.com/agriquote/server/handlers"
	"github.com/agriquote/server/middleware"
)

func NewRouter(conn *sql.DB, registry *db.Registry, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	proposalHandler := handlers.NewProposalHandler(conn, cfg)
	analyticsHandler := handlers.NewAnalyticsHandler(conn, cfg)
	exportHandler := handlers.NewExportHandler(conn, cfg)
	searchHandler := handlers.NewSearchHandler(registry, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Proposal CRUD
	mux.HandleFunc("POST /api/proposals", middleware.WithLogging(proposalHandler.Submit))
	mux.HandleFunc("GET /api/proposals", middleware.WithLogging(proposalHandler.List))
	mux.HandleFunc("GET /api/proposals/{id}", middleware.WithLogging(proposalHandler.Get))
	mux.HandleFunc("PUT /api/proposals/{id}/status", middleware.WithLogging(proposalHandler.UpdateStatus))
	mux.HandleFunc("DELETE /api/proposals/{id}", middleware.WithLogging(proposalHandler.Delete))

	// Reporting
	mux.HandleFunc("GET /api/analytics", middleware.WithLogging(analyticsHandler.GetAnalytics))
	mux.HandleFunc("GET /api/export", middleware.WithLogging(exportHandler.Export))

	// Federated search
	mux.HandleFunc("GET /api/search", middleware.WithLogging(searchHandler.Search))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("agriquote API v1"))
	})

	return mux
}
