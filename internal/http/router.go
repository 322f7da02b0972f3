package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nfl-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/nfl-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/nfl-stats-service/internal/metrics"
)

// NewRouter builds the chi router: panic recovery, request logging, CORS, then the handler routes.
// An empty allowedOrigins list allows any origin.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder, allowedOrigins []string) nethttp.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	handler.Register(r)
	return r
}
