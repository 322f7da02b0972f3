package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig selects and configures the leader cache.
type CacheConfig struct {
	Backend       string
	TTL           Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func loadCache() CacheConfig {
	backend := strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend))
	if backend != CacheBackendRedis {
		backend = CacheBackendMemory
	}
	return CacheConfig{
		Backend:       backend,
		TTL:           durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		RedisAddr:     envOrDefault(envRedisAddr, defaultRedisAddr),
		RedisPassword: envOrDefault(envRedisPassword, ""),
		RedisDB:       redisDB(),
	}
}

// redisDB accepts 0, unlike intEnvOrDefault.
func redisDB() int {
	val, err := strconv.Atoi(strings.TrimSpace(os.Getenv(envRedisDB)))
	if err != nil || val < 0 {
		return 0
	}
	return val
}
