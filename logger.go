package kdtree

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kdtree-specific helpers so every operation
// logs with the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler on stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger returns a Logger that discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{Logger: l.Logger.With("dimension", dim)}
}

// LogInsert logs a failed insert. Successful inserts are too frequent to log.
func (l *Logger) LogInsert(size int, err error) {
	if err != nil {
		l.Error("insert failed", "size", size, "error", err)
	}
}

// LogQuery logs the outcome of a query. results is the raw result count,
// before duplicate expansion.
func (l *Logger) LogQuery(kind QueryKind, results int, err error) {
	if err != nil {
		l.Error("query failed", "op", kind.String(), "error", err)
		return
	}
	l.Debug("query completed", "op", kind.String(), "results", results)
}

// LogClear logs a clear or destroy.
func (l *Logger) LogClear(op string, removed int) {
	l.Info("tree cleared", "op", op, "removed", removed)
}
