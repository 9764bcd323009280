// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the accesslog table for the given database type.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := sqliteSchema
	if dbType == DriverPostgres {
		schema = postgresSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Column order follows AccessLogRecord; id keeps insertion order
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS accesslog (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    remoteaddr TEXT NOT NULL,
    remoteuser TEXT,
    time INTEGER NOT NULL,
    method TEXT NOT NULL,
    url TEXT NOT NULL,
    protocol TEXT NOT NULL,
    httpversion TEXT NOT NULL,
    secure BOOLEAN NOT NULL DEFAULT 0,
    status INTEGER NOT NULL,
    referer TEXT,
    useragent TEXT
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS accesslog (
    id BIGSERIAL PRIMARY KEY,
    remoteaddr TEXT NOT NULL,
    remoteuser TEXT,
    time BIGINT NOT NULL,
    method TEXT NOT NULL,
    url TEXT NOT NULL,
    protocol TEXT NOT NULL,
    httpversion TEXT NOT NULL,
    secure BOOLEAN NOT NULL DEFAULT FALSE,
    status INTEGER NOT NULL,
    referer TEXT,
    useragent TEXT
);
`
