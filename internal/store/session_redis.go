package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

const revokedSessionKeyPrefix = "notes:session:revoked:"

// RedisSessionStorage keeps revoked session ids as Redis keys whose TTL
// matches the remaining lifetime of the session token, so entries disappear
// on their own.
type RedisSessionStorage struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisSessionStorage connects to Redis and verifies the connection.
func NewRedisSessionStorage(ctx context.Context, cfg config.Redis, log *logger.Logger) (*RedisSessionStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisSessionStorage").Str("address", cfg.Address).Msg("error connecting redis")
		client.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	log.Info().Str("func", "NewRedisSessionStorage").Msg("connected to redis successfully")

	return &RedisSessionStorage{client: client, logger: log}, nil
}

func (s *RedisSessionStorage) Revoke(ctx context.Context, sessionID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedSessionKeyPrefix+sessionID, 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*RedisSessionStorage.Revoke").
			Str("session_id", sessionID).
			Msg("failed to revoke session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *RedisSessionStorage) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedSessionKeyPrefix+sessionID).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*RedisSessionStorage.IsRevoked").
			Str("session_id", sessionID).
			Msg("failed to check session")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n > 0, nil
}

// Close releases the Redis connection pool.
func (s *RedisSessionStorage) Close() error {
	return s.client.Close()
}
