package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens the SQLite database at path. A single connection keeps
// ":memory:" databases coherent and serializes writers.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// sqlSlot stores the snapshot as one row of app_state in a database/sql database.
type sqlSlot struct {
	db     *sql.DB
	key    string
	logger zerolog.Logger
}

// NewSQLiteSlot creates the app_state table if needed and returns a slot for key.
// Closing the slot closes db.
func NewSQLiteSlot(ctx context.Context, db *sql.DB, key string, logger zerolog.Logger) (Slot, error) {
	s := &sqlSlot{
		db:     db,
		key:    key,
		logger: logger.With().Str("slot", "sqlite").Str("key", key).Logger(),
	}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sqlSlot) migrate(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		s.logger.Error().Err(err).Msg("failed to create app_state table")
		return fmt.Errorf("failed to create app_state table: %w", err)
	}
	return nil
}

func (s *sqlSlot) Get(ctx context.Context) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, s.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to query state: %w", err)
	}
	return []byte(value), nil
}

func (s *sqlSlot) Put(ctx context.Context, data []byte) error {
	query := `
	INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to upsert state: %w", err)
	}
	s.logger.Debug().Int("bytes", len(data)).Msg("state row written")
	return nil
}

func (s *sqlSlot) Close() error {
	return s.db.Close()
}
