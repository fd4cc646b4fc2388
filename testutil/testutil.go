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
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/menu-survey/cliparse"
	"github.com/danielhkuo/menu-survey/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Single connection: the in-memory database lives and dies with it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3001,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKey:     "test-admin-key",
	}
}

// CreateTestSession inserts a session and returns its ID.
// state should be "open", "completed", or "screened_out".
func CreateTestSession(t *testing.T, conn *sql.DB, conditionType, deviceType, state string) string {
	t.Helper()

	id := uuid.NewString()

	var completedAt *time.Time
	screenedOut := false
	switch state {
	case "open":
	case "completed":
		now := time.Now()
		completedAt = &now
	case "screened_out":
		now := time.Now()
		completedAt = &now
		screenedOut = true
	default:
		t.Fatalf("Unknown session state: %s", state)
	}

	_, err := conn.Exec(`
		INSERT INTO sessions (id, condition_type, device_type, started_at, completed_at, is_screened_out)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, conditionType, deviceType, time.Now(), completedAt, screenedOut)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return id
}

// AddTestResponse inserts a response row for a session.
func AddTestResponse(t *testing.T, conn *sql.DB, sessionID, questionID, value string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO responses (session_id, question_id, response_value, updated_at)
		VALUES ($1, $2, $3, $4)
	`, sessionID, questionID, value, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}
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
