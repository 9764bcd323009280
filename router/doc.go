// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the coin server.

# Route Registration

NewRouter creates a configured http.ServeMux wrapped in the middleware
pipeline:

	handler := router.NewRouter(store, cfg, logFile)

# Endpoints

Health:

	GET /app/                 - "200 OK"

Flips:

	GET /app/flip/            - Single flip
	GET /app/flips/{number}   - Batch of {number} flips with summary
	GET /app/flip/call/heads  - Call heads, flip, win or lose
	GET /app/flip/call/tails  - Call tails, flip, win or lose

Debug (only with cfg.DebugEnabled, otherwise 404):

	GET /app/log/access/      - All access log records
	GET /app/error            - Deliberate panic, answered with a 500

Anything else, any method:

	404 "404 NOT FOUND"

Slash-terminated routes also answer without the trailing slash.

# Pipeline

Outermost first:

	WithRequestID → WithClientAddr → WithLogging → AccessLog → CombinedLog → Recover → mux

AccessLog and CombinedLog are installed only with cfg.LogEnabled, so
unmatched routes are logged like any other request.
*/
package router
