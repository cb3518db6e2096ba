package persist

import (
	"context"
	"fmt"

	"admin-dashboard/internal/config"

	"github.com/rs/zerolog"
)

// Open builds the slot selected by the storage backend. The returned slot
// owns every connection it opened.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Slot, error) {
	key := cfg.Storage.Key

	logger.Info().
		Str("backend", cfg.Storage.Backend).
		Str("key", key).
		Msg("opening state slot")

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return NewMemorySlot(), nil

	case config.BackendFile:
		return NewFileSlot(cfg.Storage.FilePath, logger), nil

	case config.BackendPostgres:
		pool, err := NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialise postgres slot: %w", err)
		}
		slot, err := newPostgresSlot(ctx, pool, key, logger)
		if err != nil {
			pool.Close()
			return nil, err
		}
		slot.owned = true
		return slot, nil

	case config.BackendRedis:
		client := NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		slot, err := NewRedisSlot(ctx, client, key, logger)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to initialise redis slot: %w", err)
		}
		return slot, nil

	case config.BackendSQLite:
		db, err := OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		slot, err := NewSQLiteSlot(ctx, db, key, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialise sqlite slot: %w", err)
		}
		return slot, nil
	}

	return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
}
