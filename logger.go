package metanetx

import (
	"context"
	"log/slog"
	"os"

	"github.com/dd-decaf/metanetx/model"
)

// Logger wraps slog.Logger with catalog-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTable adds a source-table field to the logger.
func (l *Logger) WithTable(table string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", table),
	}
}

// LogEntitiesLoaded logs the completion of an entity table.
func (l *Logger) LogEntitiesLoaded(ctx context.Context, kind model.EntityKind, count int) {
	l.InfoContext(ctx, "entities loaded",
		"kind", kind,
		"count", count,
	)
}

// LogReactionsLoaded logs the completion of the reaction table, including the
// rows dropped because their equation did not parse.
func (l *Logger) LogReactionsLoaded(ctx context.Context, loaded, filtered int) {
	l.InfoContext(ctx, "reactions loaded",
		"count", loaded,
		"filtered_unparseable", filtered,
	)
}

// LogXrefsLoaded logs the completion of a cross-reference table.
func (l *Logger) LogXrefsLoaded(ctx context.Context, kind model.EntityKind, loaded, skipped, unknown, dangling int) {
	l.InfoContext(ctx, "cross-references loaded",
		"kind", kind,
		"count", loaded,
		"skipped_unnamespaced", skipped,
		"unknown_namespace", unknown,
		"dangling", dangling,
	)
}
