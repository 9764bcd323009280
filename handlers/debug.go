// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/coinserver/middleware"
	"github.com/danielhkuo/coinserver/models"
)

// ErrDeliberate is raised by GET /app/error
var ErrDeliberate = errors.New("Error test successful.")

// AccessLogReader is the read half of db.AccessLogStore
type AccessLogReader interface {
	AllAccessLogs(ctx context.Context) ([]models.AccessLogRecord, error)
}

type DebugHandler struct {
	store AccessLogReader
}

func NewDebugHandler(store AccessLogReader) *DebugHandler {
	return &DebugHandler{store: store}
}

// AccessLog handles GET /app/log/access/
// Returns every stored access log record in insertion order
func (h *DebugHandler) AccessLog(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.AllAccessLogs(r.Context())
	if err != nil {
		slog.Error("failed to query access log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read access log")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// Error handles GET /app/error
// Panics so the recovery middleware can be exercised end to end
func (h *DebugHandler) Error(w http.ResponseWriter, r *http.Request) {
	panic(ErrDeliberate)
}
