package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nfl-stats-service/internal/config"
	"github.com/preston-bernstein/nfl-stats-service/internal/logging"
	"github.com/preston-bernstein/nfl-stats-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	dotenvErr := config.LoadDotEnv()
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "nfl-stats-service",
		Version: appVersion,
	})
	if dotenvErr != nil {
		logging.Warn(logger, "failed to load .env file", "error", dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
