package config

import "time"

const (
	envPort             = "PORT"
	envPollInterval     = "POLL_INTERVAL"
	envProvider         = "PROVIDER"
	envMaxResults       = "MAX_RESULTS"
	envCategoriesFile   = "STAT_CATEGORIES_FILE"
	envScrapeTimeout    = "SCRAPE_TIMEOUT"
	envScrapeUserAgent  = "SCRAPE_USER_AGENT"
	envScrapeRate       = "SCRAPE_RATE_PER_MINUTE"
	envScrapeRetries    = "SCRAPE_RETRY_ATTEMPTS"
	envScrapeBackoff    = "SCRAPE_RETRY_BACKOFF"
	envCacheBackend     = "CACHE_BACKEND"
	envCacheTTL         = "CACHE_TTL"
	envRedisAddr        = "REDIS_ADDR"
	envRedisPassword    = "REDIS_PASSWORD"
	envRedisDB          = "REDIS_DB"
	envSnapshotDir      = "SNAPSHOT_DIR"
	envSnapshotsEnabled = "SNAPSHOTS_ENABLED"
	envDashboardAPIURL  = "DASHBOARD_API_URL"
	envCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"

	defaultPort = "5000"
	// Leader tables change at most a few times per game day.
	defaultPollInterval  = 5 * Duration(time.Minute)
	defaultProvider      = "nflcom"
	defaultMaxResults    = 100
	defaultScrapeTimeout = 10 * Duration(time.Second)
	defaultScrapeRate    = 30
	defaultScrapeRetries = 3
	defaultScrapeBackoff = 200 * Duration(time.Millisecond)
	defaultCacheBackend  = "memory"
	defaultCacheTTL      = 5 * Duration(time.Minute)
	defaultRedisAddr     = "localhost:6379"
	defaultSnapshotDir   = "data/snapshots"
	defaultCORSOrigins   = "*"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nfl-stats-service"
)
