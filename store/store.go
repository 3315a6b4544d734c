// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/agriquote/server/models"
)

// ErrNotFound signals a lookup that matched no proposal, distinct from a
// data-layer fault.
var ErrNotFound = errors.New("proposal not found")

const proposalColumns = `id, created_at, operation_name, field_count, acreage, crop_type,
       start_date, finish_date, email, phone, services, subtotal, discount, total,
       status, notes`

// Create persists the proposal with its services field serialized, then
// persists each service line tagged with the new identifier. A service
// line insert failure is logged and not surfaced; only the parent row
// insert is an error. Returns the assigned identifier.
func Create(conn *sql.DB, req models.SubmitProposalRequest) (int64, error) {
	services := req.Services
	if services == nil {
		services = []models.ServiceLine{}
	}

	blob, err := json.Marshal(services)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize services: %w", err)
	}

	res, err := conn.Exec(`
		INSERT INTO proposals (created_at, operation_name, field_count, acreage, crop_type,
		                       start_date, finish_date, email, phone, services,
		                       subtotal, discount, total, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, time.Now(), req.OperationName, req.FieldCount, req.Acreage, req.CropType,
		req.StartDate, req.FinishDate, req.Email, req.Phone, string(blob),
		req.Subtotal, req.Discount, req.Total, models.StatusPending)

	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	// Fire-and-forget: a failed line leaves the parent row intact.
	for _, line := range services {
		_, err := conn.Exec(`
			INSERT INTO proposal_services (proposal_id, service_name, rate, cost)
			VALUES (?, ?, ?, ?)
		`, id, line.ServiceName, line.Rate, line.Cost)
		if err != nil {
			slog.Error("failed to insert service line", "proposal_id", id, "service", line.ServiceName, "error", err)
		}
	}

	return id, nil
}

// ListAll returns all proposals ordered by creation timestamp
// descending, with services deserialized.
func ListAll(conn *sql.DB) ([]models.Proposal, error) {
	return list(conn, 0)
}

// ListRecent returns the limit most recently created proposals.
func ListRecent(conn *sql.DB, limit int) ([]models.Proposal, error) {
	return list(conn, limit)
}

func list(conn *sql.DB, limit int) ([]models.Proposal, error) {
	query := `SELECT ` + proposalColumns + `
		FROM proposals
		ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := []models.Proposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}

	return proposals, rows.Err()
}

// GetByID returns one proposal with services deserialized, or
// ErrNotFound if no row matches.
func GetByID(conn *sql.DB, id int64) (models.Proposal, error) {
	row := conn.QueryRow(`SELECT `+proposalColumns+`
		FROM proposals
		WHERE id = ?`, id)

	p, err := scanProposal(row)
	if err == sql.ErrNoRows {
		return models.Proposal{}, ErrNotFound
	}
	if err != nil {
		return models.Proposal{}, err
	}
	return p, nil
}

// UpdateStatus sets status and notes unconditionally; callers are
// trusted to pass a sensible status value. Returns rows affected - zero
// means the id did not exist, which is not an error.
func UpdateStatus(conn *sql.DB, id int64, status string, notes *string) (int64, error) {
	res, err := conn.Exec(`
		UPDATE proposals SET status = ?, notes = ? WHERE id = ?
	`, status, notes, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes all service lines referencing id, then the proposal
// row. The two deletes are sequential, not a transaction: a crash in
// between leaves orphaned lines, the accepted failure mode. Returns
// rows affected for the parent delete.
func Delete(conn *sql.DB, id int64) (int64, error) {
	if _, err := conn.Exec(`DELETE FROM proposal_services WHERE proposal_id = ?`, id); err != nil {
		return 0, err
	}

	res, err := conn.Exec(`DELETE FROM proposals WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ServiceLines returns the independently persisted lines for a proposal
// in storage order.
func ServiceLines(conn *sql.DB, proposalID int64) ([]models.ServiceLine, error) {
	rows, err := conn.Query(`
		SELECT id, proposal_id, service_name, rate, cost
		FROM proposal_services
		WHERE proposal_id = ?
		ORDER BY id
	`, proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.ServiceLine{}
	for rows.Next() {
		var line models.ServiceLine
		var rate, cost sql.NullString
		if err := rows.Scan(&line.ID, &line.ProposalID, &line.ServiceName, &rate, &cost); err != nil {
			return nil, err
		}
		line.Rate = rate.String
		line.Cost = cost.String
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProposal(s scanner) (models.Proposal, error) {
	var p models.Proposal
	var services sql.NullString

	err := s.Scan(
		&p.ID, &p.CreatedAt, &p.OperationName, &p.FieldCount, &p.Acreage, &p.CropType,
		&p.StartDate, &p.FinishDate, &p.Email, &p.Phone, &services,
		&p.Subtotal, &p.Discount, &p.Total, &p.Status, &p.Notes,
	)
	if err != nil {
		return models.Proposal{}, err
	}

	// An absent or empty blob yields an empty sequence, never an error.
	p.Services = []models.ServiceLine{}
	if services.Valid && services.String != "" {
		if err := json.Unmarshal([]byte(services.String), &p.Services); err != nil {
			slog.Error("failed to parse services blob", "proposal_id", p.ID, "error", err)
			p.Services = []models.ServiceLine{}
		}
	}

	return p, nil
}
