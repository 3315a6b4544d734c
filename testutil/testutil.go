// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

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

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. One connection max, so every statement sees the same store.
func SetupTestDB(t *testing.T) *sql.DB {
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

// SetupTestRegistry returns a registry with the proposals handle
// registered under its canonical name.
func SetupTestRegistry(t *testing.T, conn *sql.DB) *db.Registry {
	t.Helper()

	registry := db.NewRegistry()
	registry.Register(db.ProposalsDB, conn)
	return registry
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4004,
		DatabasePath: ":memory:",
		AdminSecret:  "test-admin-secret",
	}
}

// SeedProposal creates a proposal through the store and returns its id
func SeedProposal(t *testing.T, conn *sql.DB, req models.SubmitProposalRequest) int64 {
	t.Helper()

	id, err := store.Create(conn, req)
	if err != nil {
		t.Fatalf("Failed to seed proposal: %v", err)
	}
	return id
}

// BasicProposal returns a minimal valid submission for seeding
func BasicProposal(operation, email string) models.SubmitProposalRequest {
	return models.SubmitProposalRequest{
		OperationName: operation,
		Email:         email,
	}
}

// Ptr returns a pointer to v, for filling optional request fields
func Ptr[T any](v T) *T {
	return &v
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
