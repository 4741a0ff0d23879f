package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"realty-agent/domain"

	_ "modernc.org/sqlite"
)

const analyticsSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	data_json TEXT,
	session_id TEXT,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_ts ON events(ts);
CREATE INDEX IF NOT EXISTS idx_events_name ON events(name);
`

// AnalyticsStoreSQLite persists analytics in a single local SQLite file.
type AnalyticsStoreSQLite struct {
	db   *sql.DB
	path string
}

// NewAnalyticsStoreSQLite opens (creating if needed) the database at path.
// Use ":memory:" for a throwaway store.
func NewAnalyticsStoreSQLite(path string) (*AnalyticsStoreSQLite, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		dsn = "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a :memory: database exists per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(analyticsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &AnalyticsStoreSQLite{db: db, path: path}, nil
}

func (s *AnalyticsStoreSQLite) Path() string {
	return s.path
}

func (s *AnalyticsStoreSQLite) Load(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %q: %w", key, err)
	}
	return value, true, nil
}

func (s *AnalyticsStoreSQLite) Store(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("store %q: %w", key, err)
	}
	return nil
}

func (s *AnalyticsStoreSQLite) AppendEvent(ctx context.Context, event domain.Event) error {
	var data []byte
	if len(event.Data) > 0 {
		var err error
		data, err = json.Marshal(event.Data)
		if err != nil {
			return fmt.Errorf("marshal event data: %w", err)
		}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO events (id, name, data_json, session_id, ts) VALUES (?, ?, ?, ?, ?)`,
		event.ID, string(event.Name), string(data), event.SessionID, event.Timestamp.UnixNano())
	if err != nil {
		return fmt.Errorf("append event %s: %w", event.ID, err)
	}
	return nil
}

// Events returns up to limit events, newest first. A non-positive limit returns all.
func (s *AnalyticsStoreSQLite) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, data_json, session_id, ts FROM events ORDER BY ts DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e       domain.Event
			name    string
			data    sql.NullString
			session sql.NullString
			ts      int64
		)
		if err := rows.Scan(&e.ID, &name, &data, &session, &ts); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Name = domain.EventName(name)
		e.SessionID = session.String
		e.Timestamp = time.Unix(0, ts).UTC()
		if data.Valid && data.String != "" {
			if err := json.Unmarshal([]byte(data.String), &e.Data); err != nil {
				return nil, fmt.Errorf("decode event %s: %w", e.ID, err)
			}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *AnalyticsStoreSQLite) Close() error {
	return s.db.Close()
}
