// Package log provides a small structured logging layer over [log/slog].
//
// The zero [Logger] is valid and discards every record, which lets library
// code log unconditionally and leave enablement to the caller. Construction
// uses functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//	)
//
// A Trace level below [slog.LevelDebug] is provided for per-token scanner
// diagnostics, and a colorized text handler is available for terminals via
// [WithPretty].
package log
