package qmcgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with qmcgo-specific context.
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

// WithKernel adds a kernel name field to the logger.
func (l *Logger) WithKernel(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", name),
	}
}

// WithDim adds a dimension field to the logger.
func (l *Logger) WithDim(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dim", dim),
	}
}

// WithNumPoints adds a point count field to the logger.
func (l *Logger) WithNumPoints(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n),
	}
}

// LogSearch logs a completed generator search.
func (l *Logger) LogSearch(kind string, dim int, evaluations int64, best float64, err error) {
	if err != nil {
		l.Error("search failed",
			"kind", kind,
			"dim", dim,
			"evaluations", evaluations,
			"error", err,
		)
	} else {
		l.Debug("search completed",
			"kind", kind,
			"dim", dim,
			"evaluations", evaluations,
			"best", best,
		)
	}
}
