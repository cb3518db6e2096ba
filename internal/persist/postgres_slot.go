package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admin-dashboard/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPool creates a PostgreSQL connection pool for the state slot and verifies connectivity.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Msg("creating state database pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// postgresSlot stores the snapshot as one JSONB row of app_state.
type postgresSlot struct {
	pool   *pgxpool.Pool
	key    string
	owned  bool
	logger zerolog.Logger
}

// NewPostgresSlot creates the app_state table if needed and returns a slot for key.
// The caller keeps ownership of pool.
func NewPostgresSlot(ctx context.Context, pool *pgxpool.Pool, key string, logger zerolog.Logger) (Slot, error) {
	return newPostgresSlot(ctx, pool, key, logger)
}

func newPostgresSlot(ctx context.Context, pool *pgxpool.Pool, key string, logger zerolog.Logger) (*postgresSlot, error) {
	s := &postgresSlot{
		pool:   pool,
		key:    key,
		logger: logger.With().Str("slot", "postgres").Str("key", key).Logger(),
	}

	schema := `
		CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		s.logger.Error().Err(err).Msg("failed to create app_state table")
		return nil, fmt.Errorf("failed to create app_state table: %w", err)
	}

	return s, nil
}

func (s *postgresSlot) Get(ctx context.Context) ([]byte, error) {
	query := `SELECT value FROM app_state WHERE key = $1`

	var data []byte
	err := s.pool.QueryRow(ctx, query, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to query state: %w", err)
	}
	return data, nil
}

func (s *postgresSlot) Put(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to upsert state: %w", err)
	}

	s.logger.Debug().Int("bytes", len(data)).Msg("state row written")
	return nil
}

func (s *postgresSlot) Close() error {
	if s.owned {
		s.pool.Close()
	}
	return nil
}
