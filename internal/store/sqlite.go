// Package store persists prepared games records into a local SQLite
// database for downstream querying.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"paracli/internal/errors"
	"paracli/pkg/contracts/domain"
)

// defaultSchema creates the games table when no schema file is supplied.
const defaultSchema = `
CREATE TABLE IF NOT EXISTS games (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL,
	year INTEGER,
	country TEXT NOT NULL,
	host TEXT NOT NULL,
	"start" TEXT,
	"end" TEXT,
	duration INTEGER,
	countries INTEGER,
	events INTEGER,
	sports INTEGER,
	participants_m INTEGER,
	participants_f INTEGER,
	participants INTEGER,
	code TEXT
);
`

// DB wraps the SQLite database connection.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite file at dbPath.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, errors.NewStorageError("create db directory", err)
	}

	conn, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.NewStorageError("open sqlite", err)
	}
	// SQLite only supports one writer, so limit to a single connection
	conn.SetMaxOpenConns(1)

	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// ApplySchemaFile reads a SQL schema file and executes it.
func (db *DB) ApplySchemaFile(ctx context.Context, schemaPath string) error {
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("read schema %s", schemaPath), err)
	}
	if _, err := db.conn.ExecContext(ctx, string(schema)); err != nil {
		return errors.NewStorageError("execute schema", err)
	}
	return nil
}

// ApplyDefaultSchema creates the games table using the built-in schema.
func (db *DB) ApplyDefaultSchema(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, defaultSchema); err != nil {
		return errors.NewStorageError("execute default schema", err)
	}
	return nil
}

// LoadGames inserts the prepared records inside a single transaction.
// Existing rows are cleared first so a reload reflects the current
// prepared table exactly.
func (db *DB) LoadGames(ctx context.Context, records []domain.GamesRecord) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStorageError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return errors.NewStorageError("clear games table", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO games (
			type, year, country, host, "start", "end", duration,
			countries, events, sports, participants_m, participants_f, participants, code
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.NewStorageError("prepare insert", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.Type,
			nullArg(r.Year),
			r.Country,
			r.Host,
			dateArg(r.Start),
			dateArg(r.End),
			nullArg(r.Duration),
			nullArg(r.Countries),
			nullArg(r.Events),
			nullArg(r.Sports),
			nullArg(r.ParticipantsM),
			nullArg(r.ParticipantsF),
			nullArg(r.Participants),
			nullString(r.Code),
		); err != nil {
			return errors.NewStorageError(fmt.Sprintf("insert record %d", i), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageError("commit transaction", err)
	}
	return nil
}

// CountGames returns the number of loaded rows.
func (db *DB) CountGames(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&count); err != nil {
		return 0, errors.NewStorageError("count games", err)
	}
	return count, nil
}

// nullArg converts a NullInt to an SQL argument; missing becomes NULL.
func nullArg(n domain.NullInt) interface{} {
	if !n.Valid {
		return nil
	}
	return n.Value
}

// dateArg stores dates as calendar-date text; the zero time becomes NULL.
func dateArg(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format("2006-01-02")
}

// nullString stores empty strings as NULL, used for unresolved codes.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
