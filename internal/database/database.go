// Package database provides SQLite access for dm-data-renamer.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteOptions are appended to every connection string.
// mode=rw keeps the driver from creating a database that does not exist yet.
const SQLiteOptions = "mode=rw&_txlock=exclusive&_timeout=30000"

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// DB wraps a SQLite database connection with the path it was opened from.
type DB struct {
	*sql.DB
	Path string
}

// DSN builds the driver connection string for an existing database file.
func DSN(dbPath string) string {
	return fmt.Sprintf("file:%s?%s", uriEscaper.Replace(dbPath), SQLiteOptions)
}

// Open opens an existing SQLite database and verifies the connection.
// The file is never created.
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", DSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbPath, err)
	}

	// A single connection keeps every statement of a run on the same handle.
	db.SetMaxOpenConns(1)

	return &DB{
		DB:   db,
		Path: dbPath,
	}, nil
}
