// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/danielhkuo/coinserver/models"
)

const insertTimeout = 5 * time.Second

// now is swapped out by tests
var now = time.Now

// AccessLogInserter is the write half of db.AccessLogStore
type AccessLogInserter interface {
	InsertAccessLog(ctx context.Context, rec models.AccessLogRecord) error
}

// AccessLog stores one AccessLogRecord per request.
//
// By default the record is written after the handler returns and carries
// the final status code. With legacyStatus the record is written before
// the handler runs and its status is the writer's default, 200.
//
// Insert failures are logged and never affect the response.
func AccessLog(store AccessLogInserter, legacyStatus bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			entry := NewAccessLogRecord(r, now())

			if legacyStatus {
				entry.Status = http.StatusOK
				insertAccessLog(r, store, entry)
				next.ServeHTTP(w, r)
				return
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			entry.Status = rec.status
			insertAccessLog(r, store, entry)
		})
	}
}

// NewAccessLogRecord captures request metadata. Status is left at zero.
func NewAccessLogRecord(r *http.Request, at time.Time) models.AccessLogRecord {
	secure := r.TLS != nil
	protocol := "http"
	if secure {
		protocol = "https"
	}

	var remoteUser *string
	if user, _, ok := r.BasicAuth(); ok && user != "" {
		remoteUser = &user
	}

	return models.AccessLogRecord{
		RemoteAddr:  ClientAddr(r),
		RemoteUser:  remoteUser,
		Time:        at.UnixMilli(),
		Method:      r.Method,
		URL:         r.URL.RequestURI(),
		Protocol:    protocol,
		HTTPVersion: strconv.Itoa(r.ProtoMajor) + "." + strconv.Itoa(r.ProtoMinor),
		Secure:      secure,
		Referer:     optional(r.Referer()),
		UserAgent:   optional(r.UserAgent()),
	}
}

func insertAccessLog(r *http.Request, store AccessLogInserter, entry models.AccessLogRecord) {
	// The record should land even if the client has gone away
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), insertTimeout)
	defer cancel()

	if err := store.InsertAccessLog(ctx, entry); err != nil {
		slog.Error("failed to insert access log",
			"error", err,
			"method", entry.Method,
			"url", entry.URL,
			"request_id", RequestIDFromContext(r.Context()),
		)
	}
}

// CombinedLog appends one combined-format line per request to out
func CombinedLog(out io.Writer) Middleware {
	var mu sync.Mutex

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			line := CombinedLine(r, start, rec.status, rec.bytes)
			mu.Lock()
			_, err := io.WriteString(out, line)
			mu.Unlock()
			if err != nil {
				slog.Error("failed to write access log line", "error", err)
			}
		})
	}
}

// CombinedLine formats a request in the Apache combined log format:
//
//	host - user [02/Jan/2006:15:04:05 +0000] "GET /path HTTP/1.1" 200 123 "referer" "agent"
func CombinedLine(r *http.Request, at time.Time, status, size int) string {
	user := "-"
	if u, _, ok := r.BasicAuth(); ok && u != "" {
		user = u
	}

	sizeField := "-"
	if size > 0 {
		sizeField = strconv.Itoa(size)
	}

	return fmt.Sprintf("%s - %s [%s] \"%s %s HTTP/%d.%d\" %d %s \"%s\" \"%s\"\n",
		ClientAddr(r),
		user,
		strftime.Format("%d/%b/%Y:%H:%M:%S %z", at.UTC()),
		r.Method,
		r.URL.RequestURI(),
		r.ProtoMajor, r.ProtoMinor,
		status,
		sizeField,
		quoteField(r.Referer()),
		quoteField(r.UserAgent()),
	)
}

func quoteField(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
