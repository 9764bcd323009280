// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the HTTP access log.

# Opening a Store

Open connects, applies driver settings and creates the schema:

	store, err := db.Open(ctx, db.DriverSQLite, "log.db")
	store, err := db.Open(ctx, db.DriverPostgres, "postgres://...")

SQLite goes through modernc.org/sqlite (no cgo). The pool is limited to a
single connection so concurrent inserts are serialized, and the journal is
switched to WAL. PostgreSQL goes through lib/pq.

# Schema

CreateSchema is safe to call multiple times - it uses IF NOT EXISTS.
One append-only table:

	accesslog(id, remoteaddr, remoteuser, time, method, url, protocol,
	          httpversion, secure, status, referer, useragent)

id is an auto-increment key that fixes insertion order. time holds epoch
milliseconds.

# Operations

	InsertAccessLog(ctx, rec) error
	AllAccessLogs(ctx) ([]models.AccessLogRecord, error)

Both return *StorageError on failure. Middleware and handlers depend on
the AccessLogStore interface rather than *Store.
*/
package db
