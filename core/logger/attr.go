package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit
// nil checks, following the principle of making zero values useful.

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the subsystem emitting the log record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names the lifecycle event being logged (e.g. "session_expired").
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration creates an attribute for a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Status creates an attribute for an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
