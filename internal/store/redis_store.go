package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

const keyPrefix = "leaders:"

// RedisStore caches leader rows as JSON under leaders:<stat_type> with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client. A non-positive ttl uses DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func leadersKey(statType string) string {
	return keyPrefix + statType
}

func (s *RedisStore) Get(ctx context.Context, statType string) ([]stats.PlayerStat, bool, error) {
	data, err := s.client.Get(ctx, leadersKey(statType)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", statType, err)
	}

	var players []stats.PlayerStat
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, false, fmt.Errorf("decoding cached %s: %w", statType, err)
	}
	return players, true, nil
}

func (s *RedisStore) Set(ctx context.Context, statType string, players []stats.PlayerStat) error {
	if players == nil {
		players = []stats.PlayerStat{}
	}
	data, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", statType, err)
	}
	return s.client.Set(ctx, leadersKey(statType), data, s.ttl).Err()
}

// Ping checks connectivity; used at startup to decide whether Redis is usable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
