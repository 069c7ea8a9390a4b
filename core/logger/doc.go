// Package logger provides structured logging attribute helpers built on Go's
// standard slog package. Helpers return empty Attrs for nil/zero input so call
// sites never need explicit guards.
package logger
