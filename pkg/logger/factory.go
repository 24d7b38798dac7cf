package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("logger: invalid level")

// Config configures NewWithConfig.
type Config struct {
	Output io.Writer // Defaults to os.Stdout
	Sentry SentryConfig
	Level  slog.Level
}

// New creates a JSON-formatted logger at info level with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithConfig(Config{Level: slog.LevelInfo}, extractors...)
}

// NewWithConfig creates a JSON logger writing to cfg.Output, forwarding to
// Sentry when cfg.Sentry.DSN is set.
func NewWithConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	handler := slog.Handler(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: cfg.Level,
	}))

	if sentryHandler, ok := newSentryHandler(cfg.Sentry, handler); ok {
		handler = newMultiHandler(handler, sentryHandler)
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" (any case)
// to a slog level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}
