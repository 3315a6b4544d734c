// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/agriquote/server/cliparse"
	"github.com/agriquote/server/db"
	"github.com/agriquote/server/middleware"
)

type SearchHandler struct {
	registry *db.Registry
	cfg      cliparse.Config
}

func NewSearchHandler(registry *db.Registry, cfg cliparse.Config) *SearchHandler {
	return &SearchHandler{registry: registry, cfg: cfg}
}

// Search handles GET /api/search?q=
// Dispatches a substring match against the proposals database through
// the registry and returns results keyed by logical database name.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "q is required")
		return
	}

	pattern := "%" + query + "%"
	rows, err := h.registry.Query(db.ProposalsDB, `
		SELECT id, created_at, operation_name, email, phone, status, total
		FROM proposals
		WHERE operation_name LIKE ? OR email LIKE ?
		ORDER BY created_at DESC, id DESC
	`, pattern, pattern)

	if err != nil {
		slog.Error("federated search failed", "database", db.ProposalsDB, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string][]map[string]any{
		db.ProposalsDB: rows,
	})
}
