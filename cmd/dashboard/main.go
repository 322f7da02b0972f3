// Command dashboard runs one stats panel cycle against a leaders API and prints each state.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/preston-bernstein/nfl-stats-service/internal/config"
	"github.com/preston-bernstein/nfl-stats-service/internal/logging"
	"github.com/preston-bernstein/nfl-stats-service/internal/statspanel"
)

const appVersion = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	_ = config.LoadDotEnv()

	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		apiURL     = fs.String("api", "http://127.0.0.1:5000", "Base URL of the leaders API")
		stat       = fs.String("stat", "passing_yards", "Stat type to display")
		categories = fs.String("categories", os.Getenv("STAT_CATEGORIES_FILE"), "Optional YAML category catalog")
		timeout    = fs.Duration("timeout", 0, "Abort the request after this long (0 waits indefinitely)")
		logLevel   = fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := logging.NewLogger(logging.Config{
		Level:   *logLevel,
		Format:  "text",
		Service: "nfl-stats-dashboard",
		Version: appVersion,
		Output:  stderr,
	})

	catalog, err := config.LoadCatalog(*categories)
	if err != nil {
		fmt.Fprintf(stderr, "load categories: %v\n", err)
		return 1
	}
	cat, ok := catalog.Lookup(*stat)
	if !ok {
		fmt.Fprintf(stderr, "unknown stat type %q (available: %s)\n", *stat, strings.Join(catalog.Keys(), ", "))
		return 2
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	target := statspanel.TargetFunc(func(content string) {
		fmt.Fprintln(stdout, content)
	})
	ctrl := statspanel.New(target, statspanel.Config{
		BaseURL:     *apiURL,
		Path:        "/api/" + cat.Key,
		LoadingText: "Loading NFL " + strings.ReplaceAll(cat.Key, "_", " ") + " stats...",
		StatLabel:   cat.Label,
	}, logger, nil)

	if err := ctrl.LoadAndRender(ctx); err != nil {
		return 1
	}
	return 0
}
