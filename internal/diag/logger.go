package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"barsplit/core/seqio"
)

// Logger wraps slog.Logger with barsplit-specific helpers so that field
// names stay consistent across the tools.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing to w. format is "text" or "json".
func NewLogger(w io.Writer, level slog.Level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(h)}
}

// NoopLogger discards all log output.
func NoopLogger() *Logger {
	return NewLogger(io.Discard, slog.Level(1000), "text")
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q (want debug|info|warn|error)", s)
}

// WithSource tags records with the input file being processed.
func (l *Logger) WithSource(path string) *Logger {
	return &Logger{Logger: l.Logger.With("source", path)}
}

// LogSkip records a malformed input record that was dropped.
func (l *Logger) LogSkip(ctx context.Context, e *seqio.ParseError) {
	l.WarnContext(ctx, "skipped malformed record",
		"source", e.Source,
		"line", e.Line,
		"reason", e.Reason,
	)
}

// LogDropped records adapter pairs that could not bound a segment.
func (l *Logger) LogDropped(ctx context.Context, readID string, n int) {
	l.DebugContext(ctx, "dropped mis-ordered adapter pairs",
		"read_id", readID,
		"dropped", n,
	)
}

// LogSummary logs the end-of-run totals.
func (l *Logger) LogSummary(ctx context.Context, tool string, s Summary) {
	attrs := []any{
		"reads", s.Reads,
		"skipped", s.Skipped,
	}
	switch tool {
	case "demux":
		attrs = append(attrs, "assigned", s.Assigned, "unassigned", s.Unassigned)
	case "split":
		attrs = append(attrs, "segments", s.Segments, "dropped", s.Dropped)
	}
	if s.Skipped > 0 {
		l.WarnContext(ctx, tool+" completed with skipped records", attrs...)
		return
	}
	l.InfoContext(ctx, tool+" completed", attrs...)
}
