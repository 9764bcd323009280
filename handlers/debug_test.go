// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/coinserver/db"
	"github.com/danielhkuo/coinserver/models"
	"github.com/danielhkuo/coinserver/testutil"
)

type failingReader struct{}

func (failingReader) AllAccessLogs(ctx context.Context) ([]models.AccessLogRecord, error) {
	return nil, &db.StorageError{Op: "query", Err: errors.New("database is locked")}
}

func TestDebugAccessLog(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	for _, url := range []string{"/app/", "/app/flip/"} {
		err := store.InsertAccessLog(ctx, models.AccessLogRecord{
			RemoteAddr: "127.0.0.1", Method: "GET", URL: url,
			Protocol: "http", HTTPVersion: "1.1", Status: 200,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	h := NewDebugHandler(store)
	w := httptest.NewRecorder()
	h.AccessLog(w, testutil.MakeRequest("GET", "/app/log/access/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var records []models.AccessLogRecord
	testutil.AssertJSON(t, w, &records)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].URL != "/app/" || records[1].URL != "/app/flip/" {
		t.Errorf("Expected insertion order, got %s then %s", records[0].URL, records[1].URL)
	}
}

func TestDebugAccessLog_EmptyIsArray(t *testing.T) {
	h := NewDebugHandler(testutil.SetupTestStore(t))
	w := httptest.NewRecorder()
	h.AccessLog(w, testutil.MakeRequest("GET", "/app/log/access/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBody(t, w, "[]\n")
}

func TestDebugAccessLog_StoreFailure(t *testing.T) {
	h := NewDebugHandler(failingReader{})
	w := httptest.NewRecorder()
	h.AccessLog(w, testutil.MakeRequest("GET", "/app/log/access/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Failed to read access log" {
		t.Errorf("Unexpected message: %s", resp.Message)
	}
}

func TestDebugError_Panics(t *testing.T) {
	h := NewDebugHandler(failingReader{})

	defer func() {
		v := recover()
		err, ok := v.(error)
		if !ok || !errors.Is(err, ErrDeliberate) {
			t.Errorf("Expected ErrDeliberate panic, got %v", v)
		}
	}()

	h.Error(httptest.NewRecorder(), testutil.MakeRequest("GET", "/app/error", nil, nil))
}
