package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/nfl-stats-service/internal/app/leaders"
	"github.com/preston-bernstein/nfl-stats-service/internal/metrics"
	"github.com/preston-bernstein/nfl-stats-service/internal/poller"
)

const serviceMessage = "NFL.com Stats API Backend"

// DashboardOptions points the server-rendered dashboard at a leaders API.
// An empty APIBaseURL disables the dashboard routes.
type DashboardOptions struct {
	APIBaseURL string
	HTTPClient *nethttp.Client
}

// Handler wires HTTP routes to the leaders service.
type Handler struct {
	leaders   *leaders.Service
	logger    *slog.Logger
	metrics   *metrics.Recorder
	statusFn  func() poller.Status
	dashboard DashboardOptions
	upgrader  websocket.Upgrader
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *leaders.Service, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() poller.Status, dashboard DashboardOptions) *Handler {
	return &Handler{
		leaders:   svc,
		logger:    logger,
		metrics:   recorder,
		statusFn:  statusFn,
		dashboard: dashboard,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Register mounts every route on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/api/{stat_type}", h.Leaders)
	r.Get("/dashboard", h.Dashboard)
	r.Get("/dashboard/live", h.DashboardLive)
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
}

// Index describes the API and lists the stat types it serves.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"status":          "ok",
		"message":         serviceMessage,
		"available_stats": h.leaders.Catalog().Declared(),
		"usage":           "/api/<stat_type>?n=20",
	}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic, e.g. for Kubernetes readiness checks.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unmatched paths.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known paths hit with an unsupported method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
