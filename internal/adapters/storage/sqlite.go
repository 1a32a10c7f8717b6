package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/platform/logging"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key        TEXT PRIMARY KEY,
    value      BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// SQLite stores values in a single key/value table.
type SQLite struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path.
// Use ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLite, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Debug("sqlite storage opened", slog.String("path", path))

	return &SQLite{db: db, logger: logger, now: time.Now}, nil
}

// LoadQuotes implements ports.QuoteStorage.
func (s *SQLite) LoadQuotes(ctx context.Context) (domain.QuoteList, error) {
	data, err := s.get(ctx, KeyQuotes)
	if err != nil {
		return nil, err
	}

	return decodeQuotes(data)
}

// SaveQuotes implements ports.QuoteStorage.
func (s *SQLite) SaveQuotes(ctx context.Context, quotes domain.QuoteList) error {
	data, err := encodeQuotes(quotes)
	if err != nil {
		return err
	}

	return s.put(ctx, KeyQuotes, data)
}

// LoadCategory implements ports.QuoteStorage.
func (s *SQLite) LoadCategory(ctx context.Context) (string, error) {
	data, err := s.get(ctx, KeyCategory)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// SaveCategory implements ports.QuoteStorage.
func (s *SQLite) SaveCategory(ctx context.Context, category string) error {
	return s.put(ctx, KeyCategory, []byte(category))
}

// Close implements ports.QuoteStorage.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *SQLite) Name() string {
	return "storage"
}

// Check implements ports.HealthChecker.
func (s *SQLite) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(key)
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	return value, nil
}

func (s *SQLite) put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, s.now().Unix())
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	s.logger.Log(ctx, logging.LevelTrace, "stored value", slog.String("key", key), slog.Int("bytes", len(value)))

	return nil
}
