package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.MaxResults != defaultMaxResults {
		t.Fatalf("expected default max results %d, got %d", defaultMaxResults, cfg.MaxResults)
	}
	if cfg.Scrape.Timeout != defaultScrapeTimeout || cfg.Scrape.RatePerMinute != defaultScrapeRate {
		t.Fatalf("unexpected scrape defaults %+v", cfg.Scrape)
	}
	if cfg.Cache.Backend != CacheBackendMemory || cfg.Cache.TTL != defaultCacheTTL || cfg.Cache.RedisDB != 0 {
		t.Fatalf("unexpected cache defaults %+v", cfg.Cache)
	}
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Dir != defaultSnapshotDir {
		t.Fatalf("unexpected snapshot defaults %+v", cfg.Snapshots)
	}
	if cfg.Dashboard.APIBaseURL != "http://127.0.0.1:5000" {
		t.Fatalf("expected dashboard to target local port, got %s", cfg.Dashboard.APIBaseURL)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected service name %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "Fixture")
	t.Setenv(envMaxResults, "25")
	t.Setenv(envScrapeUserAgent, "stats-bot/1")
	t.Setenv(envCacheBackend, "REDIS")
	t.Setenv(envRedisAddr, "redis:6379")
	t.Setenv(envRedisDB, "2")
	t.Setenv(envSnapshotsEnabled, "false")
	t.Setenv(envDashboardAPIURL, "http://stats.internal/")
	t.Setenv(envCORSOrigins, "https://a.example, https://b.example ,")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "text")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.MaxResults != 25 {
		t.Fatalf("expected max results 25, got %d", cfg.MaxResults)
	}
	if cfg.Scrape.UserAgent != "stats-bot/1" {
		t.Fatalf("expected user agent override, got %s", cfg.Scrape.UserAgent)
	}
	if cfg.Cache.Backend != CacheBackendRedis || cfg.Cache.RedisAddr != "redis:6379" || cfg.Cache.RedisDB != 2 {
		t.Fatalf("unexpected cache config %+v", cfg.Cache)
	}
	if cfg.Snapshots.Enabled {
		t.Fatalf("expected snapshots disabled")
	}
	if cfg.Dashboard.APIBaseURL != "http://stats.internal" {
		t.Fatalf("expected trimmed dashboard url, got %s", cfg.Dashboard.APIBaseURL)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadUnknownCacheBackendFallsBackToMemory(t *testing.T) {
	t.Setenv(envCacheBackend, "memcached")
	t.Setenv(envRedisDB, "-1")

	cfg := Load()

	if cfg.Cache.Backend != CacheBackendMemory {
		t.Fatalf("expected memory backend, got %s", cfg.Cache.Backend)
	}
	if cfg.Cache.RedisDB != 0 {
		t.Fatalf("expected redis db 0 on invalid value, got %d", cfg.Cache.RedisDB)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "0s")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on non-positive value, got %s", cfg.PollInterval)
	}
}

func TestLoadCatalogDefaults(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := catalog.Lookup("passing_yards"); !ok {
		t.Fatalf("expected built-in passing_yards category")
	}
}

func TestLoadCatalogFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	body := `categories:
  - key: sacks
    url: https://www.nfl.com/stats/player-stats/category/sacks/2025/REG/all/defensivesacks/desc
    column: SCK
    label: Sacks
  - key: broken
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("expected 1 usable category, got %d", catalog.Len())
	}
	cat, ok := catalog.Lookup("sacks")
	if !ok || cat.Column != "SCK" || cat.Label != "Sacks" {
		t.Fatalf("unexpected category %+v", cat)
	}
	if _, ok := catalog.Lookup("passing_yards"); ok {
		t.Fatalf("expected file to replace built-in categories")
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(bad, []byte("categories: [:"), 0o644)
	if _, err := LoadCatalog(bad); err == nil {
		t.Fatal("expected parse error")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	_ = os.WriteFile(empty, []byte("categories: []\n"), 0o644)
	if _, err := LoadCatalog(empty); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("NFL_STATS_DOTENV_TEST=from-file\nPORT_DOTENV_KEEP=file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT_DOTENV_KEEP", "env")
	t.Cleanup(func() { os.Unsetenv("NFL_STATS_DOTENV_TEST") })

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("expected missing files to be ignored, got %v", err)
	}
	if got := os.Getenv("NFL_STATS_DOTENV_TEST"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("PORT_DOTENV_KEEP"); got != "env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
