// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/coinserver/models"
)

// Driver names as registered with database/sql
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// AccessLogStore is the append-only access log collaborator
type AccessLogStore interface {
	InsertAccessLog(ctx context.Context, rec models.AccessLogRecord) error
	AllAccessLogs(ctx context.Context) ([]models.AccessLogRecord, error)
}

// StorageError wraps a failed insert or query
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "access log " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store persists access log records in SQLite or PostgreSQL
type Store struct {
	db     *sql.DB
	dbType string
}

// Open connects to the database, applies driver settings and creates the schema
func Open(ctx context.Context, dbType, url string) (*Store, error) {
	if dbType != DriverSQLite && dbType != DriverPostgres {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if dbType == DriverSQLite {
		// One writer at a time; also keeps ":memory:" on a single database
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if dbType == DriverSQLite {
		if _, err := conn.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable WAL: %w", err)
		}
	}

	if err := CreateSchema(conn, dbType); err != nil {
		conn.Close()
		return nil, err
	}

	return New(conn, dbType), nil
}

// New wraps an existing connection. The schema must already exist.
func New(conn *sql.DB, dbType string) *Store {
	return &Store{db: conn, dbType: dbType}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertAccessLog appends one record. rec.ID is ignored.
func (s *Store) InsertAccessLog(ctx context.Context, rec models.AccessLogRecord) error {
	query := `
		INSERT INTO accesslog (remoteaddr, remoteuser, time, method, url, protocol, httpversion, secure, status, referer, useragent)
		VALUES (` + s.placeholders(11) + `)`

	_, err := s.db.ExecContext(ctx, query,
		rec.RemoteAddr,
		nullString(rec.RemoteUser),
		rec.Time,
		rec.Method,
		rec.URL,
		rec.Protocol,
		rec.HTTPVersion,
		rec.Secure,
		rec.Status,
		nullString(rec.Referer),
		nullString(rec.UserAgent),
	)
	if err != nil {
		return &StorageError{Op: "insert", Err: err}
	}
	return nil
}

// AllAccessLogs returns every record in insertion order
func (s *Store) AllAccessLogs(ctx context.Context) ([]models.AccessLogRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, remoteaddr, remoteuser, time, method, url, protocol, httpversion, secure, status, referer, useragent
		FROM accesslog
		ORDER BY id
	`)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	defer rows.Close()

	records := []models.AccessLogRecord{}
	for rows.Next() {
		var rec models.AccessLogRecord
		var remoteUser, referer, userAgent sql.NullString

		if err := rows.Scan(
			&rec.ID,
			&rec.RemoteAddr,
			&remoteUser,
			&rec.Time,
			&rec.Method,
			&rec.URL,
			&rec.Protocol,
			&rec.HTTPVersion,
			&rec.Secure,
			&rec.Status,
			&referer,
			&userAgent,
		); err != nil {
			return nil, &StorageError{Op: "scan", Err: err}
		}

		rec.RemoteUser = stringPtr(remoteUser)
		rec.Referer = stringPtr(referer)
		rec.UserAgent = stringPtr(userAgent)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}

	return records, nil
}

// placeholders returns n bind parameters in the driver's syntax
func (s *Store) placeholders(n int) string {
	params := make([]string, n)
	for i := range params {
		if s.dbType == DriverPostgres {
			params[i] = "$" + strconv.Itoa(i+1)
		} else {
			params[i] = "?"
		}
	}
	return strings.Join(params, ", ")
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
