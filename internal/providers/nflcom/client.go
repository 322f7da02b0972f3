package nflcom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers"
)

// Config controls how the scraper reaches NFL.com.
type Config struct {
	HTTPClient *http.Client
	UserAgent  string
	Timeout    time.Duration
}

// Client scrapes leader tables from NFL.com stat pages.
type Client struct {
	httpClient httpDoer
	userAgent  string
	now        func() time.Time
}

// NewClient constructs a scraper with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		now:        time.Now,
	}
}

// FetchLeaders downloads the category page and extracts one row per player from its first table.
func (c *Client) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, category.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("nflcom: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining")),
			Message:    "nflcom rate limited",
		}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return ParseLeaders(io.LimitReader(resp.Body, maxBodyBytes), category.Column)
}
