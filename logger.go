package passage

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with passage-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithChapter adds a chapter field to the logger (useful for tagging a
// resolution run with its source document).
func (l *Logger) WithChapter(chapter string) *Logger {
	return &Logger{
		Logger: l.Logger.With("chapter", chapter),
	}
}

// WithSegments adds a segment count field to the logger.
func (l *Logger) WithSegments(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("segments", n),
	}
}

// WithIssue adds an issue ID field to the logger.
func (l *Logger) WithIssue(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("issue", id),
	}
}

// LogLocate logs a locate call. Quote text is never logged; only shape
// and outcome.
func (l *Logger) LogLocate(ctx context.Context, segments int, m Match, err error) {
	if err != nil {
		l.ErrorContext(ctx, "locate failed",
			"segments", segments,
			"error", err,
		)
	} else if !m.Found {
		l.DebugContext(ctx, "locate found nothing",
			"segments", segments,
		)
	} else {
		l.DebugContext(ctx, "locate completed",
			"segments", segments,
			"tier", m.Tier.String(),
			"segment", m.SegmentIndex,
			"start", m.Start,
			"end", m.End,
		)
	}
}

// LogResolve logs a report resolution.
func (l *Logger) LogResolve(ctx context.Context, issues, located int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "resolve failed",
			"issues", issues,
			"error", err,
		)
	} else if located < issues {
		l.WarnContext(ctx, "resolve completed with unlocated issues",
			"issues", issues,
			"located", located,
			"missing", issues-located,
		)
	} else {
		l.InfoContext(ctx, "resolve completed",
			"issues", issues,
		)
	}
}

// LogSplit logs a chapter segmentation.
func (l *Logger) LogSplit(ctx context.Context, bytes, segments int) {
	l.DebugContext(ctx, "chapter split",
		"bytes", bytes,
		"segments", segments,
	)
}
