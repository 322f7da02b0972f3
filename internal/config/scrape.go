package config

// ScrapeConfig controls how the NFL.com scraper reaches upstream.
type ScrapeConfig struct {
	Timeout       Duration
	UserAgent     string
	RatePerMinute int
	RetryAttempts int
	RetryBackoff  Duration
}

func loadScrape() ScrapeConfig {
	return ScrapeConfig{
		Timeout:       durationEnvOrDefault(envScrapeTimeout, defaultScrapeTimeout),
		UserAgent:     envOrDefault(envScrapeUserAgent, ""),
		RatePerMinute: intEnvOrDefault(envScrapeRate, defaultScrapeRate),
		RetryAttempts: intEnvOrDefault(envScrapeRetries, defaultScrapeRetries),
		RetryBackoff:  durationEnvOrDefault(envScrapeBackoff, defaultScrapeBackoff),
	}
}
