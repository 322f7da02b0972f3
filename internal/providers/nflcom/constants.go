package nflcom

import "time"

const (
	providerName       = "nflcom"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (compatible; nfl-stats-service/1.0)"
	// fallbackStatIndex is the stat column used when the header lacks the category column.
	fallbackStatIndex = 4
	maxBodyBytes      = 4 << 20
	maxErrorBodyBytes = 512
)
