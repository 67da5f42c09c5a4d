package log

import (
	"context"
	"io"
	"log/slog"
)

// Logger provides a concurrency-safe simplified logging interface.
//
// The zero Logger discards every record, so it can be embedded and called
// without a nil check.
type Logger struct {
	logger *slog.Logger
	level  Level
}

// Make creates a new [Logger] that writes to the specified writer, with
// [DefaultLevel], [DefaultFormat], and [DefaultTimeLayout] unless overridden
// by options.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		logger: slog.New(cfg.handler()),
		level:  cfg.level,
	}
}

// With returns a new [Logger] that includes the given attributes in each log
// message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.logger == nil {
		return l
	}

	return Logger{
		logger: slog.New(l.logger.Handler().WithAttrs(attrs)),
		level:  l.level,
	}
}

// Level returns the minimum log level the logger was constructed with.
func (l Logger) Level() Level {
	if l.logger == nil {
		return DefaultLevel
	}

	return l.level
}

// Enabled reports whether records at the given level would be emitted.
func (l Logger) Enabled(level Level) bool {
	if l.logger == nil {
		return false
	}

	return l.logger.Enabled(context.Background(), slog.Level(level))
}

// Trace logs a message at Trace level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(LevelTrace, msg, attrs...)
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(LevelDebug, msg, attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(LevelInfo, msg, attrs...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(LevelWarn, msg, attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(LevelError, msg, attrs...)
}

func (l Logger) log(level Level, msg string, attrs ...slog.Attr) {
	// Silently return for zero value loggers.
	if l.logger == nil {
		return
	}

	l.logger.LogAttrs(context.Background(), slog.Level(level), msg, attrs...)
}
