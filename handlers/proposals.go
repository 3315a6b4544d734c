// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/agriquote/server/auth"
	"github.com/agriquote/server/cliparse"
	"github.com/agriquote/server/middleware"
	"github.com/agriquote/server/models"
	"github.com/agriquote/server/store"
)

type ProposalHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	verifier auth.Verifier
}

func NewProposalHandler(conn *sql.DB, cfg cliparse.Config) *ProposalHandler {
	return &ProposalHandler{
		db:       conn,
		cfg:      cfg,
		verifier: auth.NewSharedSecret(cfg.AdminSecret),
	}
}

// Submit handles POST /api/proposals
func (h *ProposalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.OperationName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "operation_name is required")
		return
	}
	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	id, err := store.Create(h.db, req)
	if err != nil {
		slog.Error("failed to insert proposal", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("proposal created", "proposal_id", id, "operation", req.OperationName)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitProposalResponse{
		ID:      id,
		Success: true,
		Message: "Proposal submitted",
	})
}

// List handles GET /api/proposals (admin only)
// The credential is checked before any query executes.
func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := h.verifier.Verify(r.Header.Get("X-Admin-Secret")); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin secret")
		return
	}

	proposals, err := store.ListAll(h.db)
	if err != nil {
		slog.Error("failed to list proposals", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, proposals)
}

// Get handles GET /api/proposals/{id}
func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	proposal, err := store.GetByID(h.db, id)
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Proposal not found")
		return
	}
	if err != nil {
		slog.Error("failed to query proposal", "proposal_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, proposal)
}

// UpdateStatus handles PUT /api/proposals/{id}/status
// Zero rows affected means the id did not exist; that is reported, not
// treated as an error.
func (h *ProposalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	updated, err := store.UpdateStatus(h.db, id, req.Status, req.Notes)
	if err != nil {
		slog.Error("failed to update status", "proposal_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("proposal status updated", "proposal_id", id, "status", req.Status, "updated", updated)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateStatusResponse{
		Success: true,
		Updated: updated,
	})
}

// Delete handles DELETE /api/proposals/{id}
func (h *ProposalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := store.Delete(h.db, id)
	if err != nil {
		slog.Error("failed to delete proposal", "proposal_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("proposal deleted", "proposal_id", id, "deleted", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteProposalResponse{
		Success: true,
		Deleted: deleted,
	})
}

// parseID extracts the {id} path value, writing a 400 on garbage input.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid proposal id")
		return 0, false
	}
	return id, true
}
