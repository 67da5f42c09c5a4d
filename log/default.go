package log

import (
	"log/slog"
	"os"
)

// defaultLog backs the package-level logging functions. It writes to stderr
// at [DefaultLevel].
var defaultLog = Make(os.Stderr)

// SetDefault replaces the logger used by the package-level functions and
// returns the previous one.
func SetDefault(l Logger) Logger {
	prev := defaultLog
	defaultLog = l

	return prev
}

// Trace logs a message at Trace level using the default logger.
func Trace(msg string, attrs ...slog.Attr) { defaultLog.Trace(msg, attrs...) }

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) { defaultLog.Debug(msg, attrs...) }

// Info logs a message at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) { defaultLog.Info(msg, attrs...) }

// Warn logs a message at Warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) { defaultLog.Warn(msg, attrs...) }

// Error logs a message at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) { defaultLog.Error(msg, attrs...) }
