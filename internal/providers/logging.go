package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nfl-stats-service/internal/logging"
)

// logWithProvider emits a log entry if a logger is available and always includes provider and stat type.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider, statType string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, provider),
		slog.String(logging.FieldStatType, statType),
	)
	logger.Log(ctx, level, msg, args...)
}
