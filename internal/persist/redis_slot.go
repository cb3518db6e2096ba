package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisSlot stores the snapshot under one Redis string key.
type redisSlot struct {
	client *redis.Client
	key    string
	logger zerolog.Logger
}

// NewRedisClient creates a Redis client for the state slot.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewRedisSlot creates a slot for key. Closing the slot closes client.
func NewRedisSlot(ctx context.Context, client *redis.Client, key string, logger zerolog.Logger) (Slot, error) {
	logger = logger.With().Str("slot", "redis").Str("key", key).Logger()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("failed to ping redis")
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &redisSlot{client: client, key: key, logger: logger}, nil
}

func (s *redisSlot) Get(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to get state key: %w", err)
	}
	return data, nil
}

func (s *redisSlot) Put(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set state key: %w", err)
	}
	s.logger.Debug().Int("bytes", len(data)).Msg("state key written")
	return nil
}

func (s *redisSlot) Close() error {
	return s.client.Close()
}
