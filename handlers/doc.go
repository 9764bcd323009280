// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the coin server.

# Handler Types

  - FlipHandler: single flips, batches and calls, backed by a coin.Engine
  - DebugHandler: access log dump and a deliberate panic, backed by an AccessLogReader

	flipHandler := handlers.NewFlipHandler(coin.NewEngine(nil))
	debugHandler := handlers.NewDebugHandler(store)

# Flips

	GET /app/flip/            → Flip       {"flip": "heads"}
	GET /app/flips/{number}   → Flips      {"raw": [...], "summary": {...}}
	GET /app/flip/call/heads  → Call(models.Heads)
	GET /app/flip/call/tails  → Call(models.Tails)

A {number} that is not an integer in [0, coin.MaxCount] gets a 400 JSON
error instead of being coerced.

# Debug

Registered only when debug mode is on:

	GET /app/log/access/  → AccessLog  JSON array of every record
	GET /app/error        → Error      panics with ErrDeliberate

A failed access log query returns a 500 JSON error. The panic from Error
is turned into a 500 by middleware.Recover.
*/
package handlers
