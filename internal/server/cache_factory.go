package server

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nfl-stats-service/internal/config"
	"github.com/preston-bernstein/nfl-stats-service/internal/logging"
	"github.com/preston-bernstein/nfl-stats-service/internal/store"
)

// buildCache returns the configured leader cache and a closer for its resources.
// An unreachable Redis falls back to the in-memory cache.
func buildCache(ctx context.Context, cfg config.Config, logger *slog.Logger) (store.Cache, func() error) {
	noop := func() error { return nil }
	if cfg.Cache.Backend != config.CacheBackendRedis {
		return store.NewMemoryStore(cfg.Cache.TTL), noop
	}

	rs := store.NewRedisStore(redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	}), cfg.Cache.TTL)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rs.Ping(pingCtx); err != nil {
		logging.Warn(logger, "redis unavailable, using memory cache",
			slog.String("addr", cfg.Cache.RedisAddr),
			"error", err,
		)
		_ = rs.Close()
		return store.NewMemoryStore(cfg.Cache.TTL), noop
	}
	logging.Info(logger, "using redis leader cache", slog.String("addr", cfg.Cache.RedisAddr))
	return rs, rs.Close
}
