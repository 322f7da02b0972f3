package config

import (
	"strings"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	PollInterval   Duration
	Provider       string
	MaxResults     int
	CategoriesFile string
	Scrape         ScrapeConfig
	Cache          CacheConfig
	Snapshots      SnapshotConfig
	Dashboard      DashboardConfig
	CORS           CORSConfig
	Metrics        MetricsConfig
	Log            LogConfig
}

// DashboardConfig points the server-side panel at the stats API.
type DashboardConfig struct {
	APIBaseURL string
}

// CORSConfig lists origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// Call LoadDotEnv first to merge a local .env file.
func Load() Config {
	port := envOrDefault(envPort, defaultPort)
	return Config{
		Port:           port,
		PollInterval:   durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:       strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		MaxResults:     intEnvOrDefault(envMaxResults, defaultMaxResults),
		CategoriesFile: envOrDefault(envCategoriesFile, ""),
		Scrape:         loadScrape(),
		Cache:          loadCache(),
		Snapshots:      loadSnapshots(),
		Dashboard: DashboardConfig{
			APIBaseURL: strings.TrimSuffix(envOrDefault(envDashboardAPIURL, "http://127.0.0.1:"+port), "/"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(envOrDefault(envCORSOrigins, defaultCORSOrigins)),
		},
		Metrics: loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
