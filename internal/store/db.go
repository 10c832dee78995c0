// Package store persists the site's operator-side data in SQLite: per-visitor
// theme preferences, privacy-conscious visit metrics, and the contact
// message log.
package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// timeFormat is how timestamps are stored. It sorts lexically and is
// understood by SQLite's date functions.
const timeFormat = "2006-01-02 15:04:05"

// Store wraps a sql.DB with the site's queries.
type Store struct {
	*sql.DB
	path string
	salt string
	now  func() time.Time
}

// Open creates or opens a SQLite database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return newStore(sqlDB, path)
}

// OpenMemory creates an in-memory database (useful for testing).
func OpenMemory() (*Store, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	return newStore(sqlDB, ":memory:")
}

func newStore(sqlDB *sql.DB, path string) (*Store, error) {
	s := &Store{DB: sqlDB, path: path, salt: newSalt(), now: time.Now}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Path is the database file, or ":memory:".
func (s *Store) Path() string { return s.path }

func (s *Store) migrate() error {
	_, err := s.Exec(schema)
	return err
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timeFormat)
}

func parseTime(v string) time.Time {
	t, err := time.ParseInLocation(timeFormat, v, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// newSalt returns a per-process salt for IP hashing. Hashes are only
// comparable within one run of the server.
func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("store: reading random salt: %v", err))
	}
	return hex.EncodeToString(b)
}

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
    visitor_id TEXT PRIMARY KEY,
    theme TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS visitors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    hashed_ip TEXT NOT NULL,
    user_agent TEXT NOT NULL DEFAULT '',
    path TEXT NOT NULL DEFAULT '',
    timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);
CREATE INDEX IF NOT EXISTS idx_visitors_hash ON visitors(hashed_ip);

CREATE TABLE IF NOT EXISTS messages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    body TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('sent','failed')),
    error TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_created ON messages(created_at);
`
