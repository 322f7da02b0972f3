package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nfl-stats-service/internal/app/leaders"
	"github.com/preston-bernstein/nfl-stats-service/internal/config"
	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
	httpserver "github.com/preston-bernstein/nfl-stats-service/internal/http"
	"github.com/preston-bernstein/nfl-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/nfl-stats-service/internal/logging"
	"github.com/preston-bernstein/nfl-stats-service/internal/metrics"
	"github.com/preston-bernstein/nfl-stats-service/internal/poller"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers"
)

var (
	metricsSetup = metrics.Setup
	loadCatalog  = config.LoadCatalog
)

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	leadersService *leaders.Service
	httpServer     httpServer
	metricsServer  httpServer
	poller         Poller
	metricsStop    func(context.Context) error
	cacheClose     func() error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.StatsProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.StatsProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	svc, cacheClose := buildLeadersService(cfg, logger, recorder, provider)
	plr := poller.New(svc, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, svc, logger, recorder, plr)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		leadersService: svc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		poller:         plr,
		metricsStop:    metricsShutdown,
		cacheClose:     cacheClose,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *leaders.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:            cfg,
		logger:         logger,
		leadersService: svc,
		httpServer:     httpSrv,
		poller:         plr,
	}
}

func buildLeadersService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.StatsProvider) (*leaders.Service, func() error) {
	catalog, err := loadCatalog(cfg.CategoriesFile)
	if err != nil {
		logging.Error(logger, "category catalog load failed, using built-in categories", err,
			slog.String("path", cfg.CategoriesFile),
		)
		catalog = stats.NewCatalog(stats.DefaultCategories())
	}

	cache, cacheClose := buildCache(context.Background(), cfg, logger)
	snaps := buildSnapshots(cfg)

	opts := leaders.Options{
		Catalog:    catalog,
		Provider:   provider,
		Cache:      cache,
		Snapshots:  snaps.store,
		Logger:     logger,
		Metrics:    recorder,
		MaxResults: cfg.MaxResults,
	}
	// A nil *Writer must not become a non-nil interface.
	if snaps.writer != nil {
		opts.SnapshotWriter = snaps.writer
	}
	return leaders.NewService(opts), cacheClose
}

func buildHTTPServer(cfg config.Config, svc *leaders.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(svc, logger, recorder, statusFn, handlers.DashboardOptions{
		APIBaseURL: cfg.Dashboard.APIBaseURL,
		HTTPClient: &http.Client{Timeout: dashboardClientTimeout},
	})
	router := httpserver.NewRouter(handler, logger, recorder, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.cacheClose != nil {
		if err := s.cacheClose(); err != nil {
			logging.Warn(s.logger, "cache close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}
	if rec == nil {
		rec = metrics.NewRecorder()
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Leaders exposes the leaders service (useful for tests).
func (s *Server) Leaders() *leaders.Service {
	return s.leadersService
}
