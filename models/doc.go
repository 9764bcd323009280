// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON types shared by handlers, middleware and storage.

# Coin Types

	Outcome      "heads" | "tails"
	FlipResponse {"flip": "heads"}
	BatchResult  {"raw": ["heads","tails","heads"], "summary": {"heads": 2, "tails": 1}}
	CallResult   {"call": "heads", "flip": "tails", "result": "lose"}

BatchResult.Summary never contains a zero count. A batch of zero flips
encodes as {"raw": [], "summary": {}}.

# Access Log

AccessLogRecord mirrors the accesslog table column for column:

	id, remoteaddr, remoteuser, time, method, url, protocol,
	httpversion, secure, status, referer, useragent

Optional columns (remoteuser, referer, useragent) are pointers and encode
as null when absent.

# Errors

All JSON error bodies use ErrorResponse:

	{"error": "Bad Request", "message": "number must be a non-negative integer"}
*/
package models
