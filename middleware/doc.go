// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides the request pipeline and HTTP helper functions.

# Pipeline

A Middleware wraps an http.Handler. Chain composes them so the first one
listed sees the request first:

	handler := middleware.Chain(mux,
		middleware.WithRequestID,
		middleware.WithLogging,
		middleware.AccessLog(store, cfg.LegacyStatus),
		middleware.CombinedLog(logFile),
		middleware.Recover,
	)

The router builds this list once from Config.

# Request IDs

WithRequestID keeps a well-formed X-Request-Id from the client or
generates "req_<uuid>", stores it in the context and echoes it in the
response. RequestIDFromContext reads it back for log lines.

# Request Logging

WithLogging writes "request completed" with method, path, status,
duration_ms and request_id to slog for every request.

# Access Log

AccessLog inserts one models.AccessLogRecord per request, matched or not.
The record carries the final status code; with legacyStatus it is written
before the handler runs and the status is the default 200. Insert errors
are logged and never reach the client.

CombinedLog appends a combined-format line per request:

	192.0.2.1 - - [05/Mar/2024:14:07:09 +0000] "GET /app/ HTTP/1.1" 200 6 "-" "curl/8.0"

# Panic Recovery

Recover converts a handler panic into a 500 JSON error. The panic value
and stack trace go to slog, never to the response body.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.TextResponse(w, http.StatusNotFound, "404 NOT FOUND")

# Client Address

The remoteaddr column and the combined log host field come from ClientAddr.
By default that is the socket peer. Behind a reverse proxy, install
WithClientAddr(true) to take the address from X-Forwarded-For or X-Real-IP
instead (see GetClientIP):

	handler := middleware.Chain(mux, middleware.WithClientAddr(cfg.TrustProxy))
*/
package middleware
