// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/agriquote/server/cliparse"
	"github.com/agriquote/server/db"
	"github.com/agriquote/server/models"
	"github.com/agriquote/server/store"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

func getTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4004,
		DatabasePath: ":memory:",
		AdminSecret:  "test-admin-secret",
	}
}

func strPtr(s string) *string { return &s }

func seedProposal(t *testing.T, conn *sql.DB, operation, email string, total *string) int64 {
	t.Helper()

	id, err := store.Create(conn, models.SubmitProposalRequest{
		OperationName: operation,
		Email:         email,
		Total:         total,
		Services: []models.ServiceLine{
			{ServiceName: "Planting", Rate: "$10.00/acre", Cost: "$500.00"},
		},
	})
	if err != nil {
		t.Fatalf("Failed to seed proposal: %v", err)
	}
	return id
}

func TestSubmit(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	cfg := getTestConfig()
	handler := NewProposalHandler(conn, cfg)

	tests := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{
			name: "valid submission",
			body: models.SubmitProposalRequest{
				OperationName: "Hollow Creek Ranch",
				Email:         "ops@hollowcreek.example",
				Services: []models.ServiceLine{
					{ServiceName: "Harvesting", Rate: "$25.00/acre", Cost: "$5,000.00"},
				},
				Total: strPtr("$5,000.00"),
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing operation name",
			body: models.SubmitProposalRequest{
				Email: "ops@hollowcreek.example",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			body: models.SubmitProposalRequest{
				OperationName: "Hollow Creek Ranch",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           nil,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != nil {
				body, _ := json.Marshal(tt.body)
				req = httptest.NewRequest("POST", "/api/proposals", bytes.NewReader(body))
			} else {
				req = httptest.NewRequest("POST", "/api/proposals", bytes.NewReader([]byte("not json")))
			}
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusCreated {
				var resp models.SubmitProposalResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if !resp.Success {
					t.Error("Expected success flag")
				}
				if resp.ID == 0 {
					t.Error("Expected a nonzero id")
				}
			}
		})
	}
}

func TestListRequiresAdminSecret(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	cfg := getTestConfig()
	handler := NewProposalHandler(conn, cfg)
	seedProposal(t, conn, "Gated Farm", "gated@example.com", nil)

	tests := []struct {
		name           string
		secret         string
		expectedStatus int
	}{
		{"valid secret", "test-admin-secret", http.StatusOK},
		{"wrong secret", "nope", http.StatusUnauthorized},
		{"missing secret", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/proposals", nil)
			if tt.secret != "" {
				req.Header.Set("X-Admin-Secret", tt.secret)
			}
			w := httptest.NewRecorder()

			handler.List(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK {
				var proposals []models.Proposal
				if err := json.NewDecoder(w.Body).Decode(&proposals); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if len(proposals) != 1 {
					t.Errorf("Expected 1 proposal, got %d", len(proposals))
				}
				if len(proposals) == 1 && len(proposals[0].Services) != 1 {
					t.Errorf("Expected services deserialized, got %v", proposals[0].Services)
				}
			}
		})
	}
}

func TestGet(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	cfg := getTestConfig()
	handler := NewProposalHandler(conn, cfg)
	id := seedProposal(t, conn, "Lookup Farm", "lookup@example.com", strPtr("$250.00"))

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"existing proposal", "1", http.StatusOK},
		{"unknown id", "9999", http.StatusNotFound},
		{"garbage id", "abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/proposals/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK {
				var p models.Proposal
				if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if p.ID != id {
					t.Errorf("Expected id %d, got %d", id, p.ID)
				}
				if p.Total == nil || *p.Total != "$250.00" {
					t.Errorf("Expected total '$250.00', got %v", p.Total)
				}
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	cfg := getTestConfig()
	handler := NewProposalHandler(conn, cfg)
	id := seedProposal(t, conn, "Status Farm", "status@example.com", nil)

	body, _ := json.Marshal(models.UpdateStatusRequest{
		Status: models.StatusApproved,
		Notes:  strPtr("Looks good"),
	})
	req := httptest.NewRequest("PUT", "/api/proposals/1/status", bytes.NewReader(body))
	req.SetPathValue("id", "1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.UpdateStatus(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.UpdateStatusResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || resp.Updated != 1 {
		t.Errorf("Expected success with 1 row updated, got %+v", resp)
	}

	got, err := store.GetByID(conn, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.StatusApproved {
		t.Errorf("Expected status 'approved', got '%s'", got.Status)
	}
}

func TestUpdateStatusNonexistentReportsZero(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	cfg := getTestConfig()
	handler := NewProposalHandler(conn, cfg)

	body, _ := json.Marshal(models.UpdateStatusRequest{Status: models.StatusRejected})
	req := httptest.NewRequest("PUT", "/api/proposals/424/status", bytes.NewReader(body))
	req.SetPathValue("id", "424")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.UpdateStatus(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.UpdateStatusResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Updated != 0 {
		t.Errorf("Expected 0 rows updated, got %d", resp.Updated)
	}
}

func TestDeleteHandler(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	cfg := getTestConfig()
	handler := NewProposalHandler(conn, cfg)
	id := seedProposal(t, conn, "Doomed Farm", "doomed@example.com", nil)

	req := httptest.NewRequest("DELETE", "/api/proposals/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.DeleteProposalResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || resp.Deleted != 1 {
		t.Errorf("Expected success with 1 row deleted, got %+v", resp)
	}

	if _, err := store.GetByID(conn, id); err != store.ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	lines, err := store.ServiceLines(conn, id)
	if err != nil {
		t.Fatalf("ServiceLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected no orphaned service lines, got %d", len(lines))
	}
}
