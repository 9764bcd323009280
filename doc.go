// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the coin server.

The coin server is a small HTTP API that flips coins, scores calls against
the flip and records every request in an access log database and a
combined-format log file.

# Starting the Server

With defaults (port 5000, SQLite log.db, access.log, debug off):

	go run .

Or with flags:

	go run . -p 5555 --debug
	go run . --log=false
	go run . -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DEBUG (--debug): Register /app/log/access/ and /app/error
  - LOG (--log): Access logging to database and file (default: true)
  - DATABASE_TYPE (-t), DATABASE_URL (-d): Access log store
  - LOG_FILE (--log-file): Combined-format log path

See package cliparse for the full list. A .env file is read at startup.

# Architecture

  - coin: Flip engine (randomness source, batches, calls)
  - handlers: HTTP request handlers (flips, debug)
  - router: Route definitions and middleware pipeline
  - middleware: Request IDs, logging, access log, recovery, JSON helpers
  - models: Response and access log types
  - db: Access log storage (SQLite or PostgreSQL)
  - cliparse: Configuration parsing

The server shuts down gracefully on SIGINT or SIGTERM.
*/
package main
