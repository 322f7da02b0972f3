package nflcom

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers"
	"github.com/preston-bernstein/nfl-stats-service/internal/testutil"
)

var passingYards = stats.Category{
	Key:    "passing_yards",
	URL:    "https://www.nfl.com/stats/player-stats/category/passing/2025/REG/all/passingyards/DESC",
	Column: "Pass Yds",
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{HTTPClient: &http.Client{Transport: rt}})
}

func response(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

func TestFetchLeadersScrapesCategoryPage(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.String() != passingYards.URL {
			t.Fatalf("unexpected url %s", req.URL)
		}
		if req.Header.Get("User-Agent") != defaultUserAgent {
			t.Fatalf("expected default user agent, got %q", req.Header.Get("User-Agent"))
		}
		return response(http.StatusOK, leadersPage, nil), nil
	})

	players, err := client.FetchLeaders(context.Background(), passingYards)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	if players[0].Name != "Joe Burrow" || players[0].Stat.Float() != 4918 {
		t.Fatalf("unexpected first player %+v", players[0])
	}
}

func TestFetchLeadersRateLimited(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		h := make(http.Header)
		h.Set("Retry-After", "7")
		return response(http.StatusTooManyRequests, "", h), nil
	})

	_, err := client.FetchLeaders(context.Background(), passingYards)
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second || rl.Provider != providerName {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestFetchLeadersRateLimitedWithHTTPDateAndRemaining(t *testing.T) {
	now := testutil.MustParseRFC3339("2025-01-05T18:00:00Z")
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		h := make(http.Header)
		h.Set("Retry-After", now.Add(2*time.Minute).Format(http.TimeFormat))
		h.Set("X-RateLimit-Remaining", " 0 ")
		return response(http.StatusTooManyRequests, "", h), nil
	})
	client.now = testutil.NowAt(now)

	_, err := client.FetchLeaders(context.Background(), passingYards)
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 2*time.Minute {
		t.Fatalf("expected retry after 2m from fixed clock, got %s", rl.RetryAfter)
	}
	if rl.Remaining != "0" {
		t.Fatalf("expected remaining header to be captured, got %q", rl.Remaining)
	}
}

func TestFetchLeadersUnexpectedStatus(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return response(http.StatusServiceUnavailable, " down for maintenance \n", nil), nil
	})

	_, err := client.FetchLeaders(context.Background(), passingYards)
	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable || statusErr.Body != "down for maintenance" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestFetchLeadersTransportError(t *testing.T) {
	boom := errors.New("dial failed")
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	if _, err := client.FetchLeaders(context.Background(), passingYards); !errors.Is(err, boom) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestFetchLeadersBadURL(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.FetchLeaders(context.Background(), stats.Category{URL: "://bad"}); err == nil {
		t.Fatal("expected request build error")
	}
}

func TestFetchLeadersCustomUserAgent(t *testing.T) {
	client := NewClient(Config{
		UserAgent: "stats-bot/2",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("User-Agent") != "stats-bot/2" {
				t.Fatalf("unexpected user agent %q", req.Header.Get("User-Agent"))
			}
			return response(http.StatusOK, "<html></html>", nil), nil
		})},
	})
	players, err := client.FetchLeaders(context.Background(), passingYards)
	if err != nil || len(players) != 0 {
		t.Fatalf("expected empty result, got %v %v", players, err)
	}
}
