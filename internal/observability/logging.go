package observability

import (
	"context"
	"log/slog"
)

// LoggingConfig defines which types of automated logging are enabled.
type LoggingConfig struct {
	EnableRepoLogging bool
}

// Config holds the current logging configuration.
var Config = LoggingConfig{
	EnableRepoLogging: true,
}

// RepoLogger provides structured logging for repository operations.
type RepoLogger struct {
	tableName string
	logger    *slog.Logger
}

// NewRepoLogger creates a new RepoLogger for the given table.
func NewRepoLogger(tableName string, logger *slog.Logger) *RepoLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &RepoLogger{tableName: tableName, logger: logger}
}

// LogError logs a failed store round trip. Not-found results are not errors and are never passed here.
func (l *RepoLogger) LogError(ctx context.Context, err error, operation string) {
	if !Config.EnableRepoLogging || err == nil {
		return
	}
	l.logger.ErrorContext(ctx, "repository error",
		slog.String("table", l.tableName),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// LogAnomaly logs stored data that breaks a model invariant but can still be served.
func (l *RepoLogger) LogAnomaly(ctx context.Context, operation, message string, fields map[string]any) {
	if !Config.EnableRepoLogging {
		return
	}
	attrs := []any{
		slog.String("table", l.tableName),
		slog.String("operation", operation),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.WarnContext(ctx, message, attrs...)
}
