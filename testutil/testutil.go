// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/coinserver/cliparse"
	"github.com/danielhkuo/coinserver/db"
)

// SetupTestStore opens a fresh in-memory SQLite access log store
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(context.Background(), db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DebugEnabled: false,
		LogEnabled:   true,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
		LogFile:      "access.log",
		LogLevel:     slog.LevelInfo,
	}
}

// CountAccessLogs returns the number of stored access log records
func CountAccessLogs(t *testing.T, store db.AccessLogStore) int {
	t.Helper()

	records, err := store.AllAccessLogs(context.Background())
	if err != nil {
		t.Fatalf("Failed to read access log: %v", err)
	}
	return len(records)
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

// AssertBody checks that the response body matches exactly
func AssertBody(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if w.Body.String() != expected {
		t.Errorf("Expected body %q, got %q", expected, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
