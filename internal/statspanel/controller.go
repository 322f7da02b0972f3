package statspanel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/nfl-stats-service/internal/logging"
	"github.com/preston-bernstein/nfl-stats-service/internal/metrics"
)

const (
	// DefaultPath is the stats endpoint the panel reads.
	DefaultPath = "/api/passing_yards"
	// DefaultLoadingText is shown while a request is in flight.
	DefaultLoadingText = "Loading NFL passing yards stats..."
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls where the panel reads from and how it labels its states.
type Config struct {
	BaseURL     string
	Path        string
	LoadingText string
	StatLabel   string
	HTTPClient  *http.Client
}

// Controller drives one fetch-and-render cycle per LoadAndRender call against a single target.
type Controller struct {
	target      Target
	endpoint    string
	loadingText string
	statLabel   string
	client      httpDoer
	logger      *slog.Logger
	metrics     *metrics.Recorder
	now         func() time.Time

	mu    sync.Mutex
	phase Phase
}

// New builds a controller bound to target. The HTTP client has no timeout of its own;
// callers bound a cycle through the context passed to LoadAndRender.
func New(target Target, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Controller {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	loading := cfg.LoadingText
	if loading == "" {
		loading = DefaultLoadingText
	}
	label := cfg.StatLabel
	if label == "" {
		label = DefaultStatLabel
	}
	var client httpDoer = http.DefaultClient
	if cfg.HTTPClient != nil {
		client = cfg.HTTPClient
	}
	return &Controller{
		target:      target,
		endpoint:    strings.TrimSuffix(cfg.BaseURL, "/") + path,
		loadingText: loading,
		statLabel:   label,
		client:      client,
		logger:      logger,
		metrics:     recorder,
		now:         time.Now,
		phase:       PhaseIdle,
	}
}

// Endpoint returns the URL the controller requests.
func (c *Controller) Endpoint() string {
	return c.endpoint
}

// Phase returns the phase of the most recent cycle.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// LoadAndRender writes the loading text, fetches the endpoint, and replaces the target
// content with either the stats table or an error message. Failures are presented on
// the target and also returned; the target is never left in the loading state.
func (c *Controller) LoadAndRender(ctx context.Context) error {
	start := c.now()
	c.setPhase(PhaseLoading)
	c.target.SetContent(c.loadingText)

	markup, err := c.fetchAndRender(ctx)
	if err != nil {
		c.target.SetContent(ErrorPrefix + err.Error())
		c.setPhase(PhaseFailed)
	} else {
		c.target.SetContent(markup)
		c.setPhase(PhaseRendered)
	}

	c.observe(ctx, err, c.now().Sub(start))
	return err
}

func (c *Controller) fetchAndRender(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return "", &NetworkError{Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &NetworkError{StatusCode: resp.StatusCode}
	}

	players, err := decodeBody(resp.Body)
	if err != nil {
		return "", err
	}
	return RenderTable(c.statLabel, players)
}

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

func (c *Controller) observe(ctx context.Context, err error, elapsed time.Duration) {
	outcome := Outcome(err)
	if c.metrics != nil {
		c.metrics.RecordPanelCycle(outcome, elapsed)
	}

	logger := logging.FromContext(ctx, c.logger)
	if logger == nil {
		return
	}
	args := []any{
		slog.String(logging.FieldEndpoint, c.endpoint),
		slog.String(logging.FieldPhase, outcome),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if err != nil {
		logger.Warn("stats panel failed", append(args, "error", err)...)
		return
	}
	logger.Info("stats panel rendered", args...)
}
