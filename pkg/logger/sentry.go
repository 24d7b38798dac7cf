package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const defaultFlushTimeout = 2 * time.Second

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Release     string `yaml:"release"`
	// MinLevel determines which log levels are kept as Sentry logs
	// (slog.LevelWarn for warnings and errors, slog.LevelError for errors only).
	MinLevel slog.Level `yaml:"-"`
}

// newSentryHandler initializes the SDK and returns a handler forwarding to
// Sentry. It reports false when cfg has no DSN or initialization fails; the
// failure is written to local.
func newSentryHandler(cfg SentryConfig, local slog.Handler) (slog.Handler, bool) {
	if cfg.DSN == "" {
		return nil, false
	}

	env := cfg.Environment
	if env == "" {
		env = "production"
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: env,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return nil, false
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	return sentryslog.Option{
		EventLevel: eventLevel, // Errors create Issues in Sentry
		LogLevel:   logLevel,   // Logs stored for context/search
	}.NewSentryHandler(context.Background()), true
}

// FlushSentry waits for buffered Sentry events until ctx is done or two
// seconds pass, whichever comes first. It is a no-op when Sentry was never
// initialized and has the shape of a shutdown hook.
func FlushSentry(ctx context.Context) error {
	timeout := defaultFlushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d < timeout {
			timeout = d
		}
	}
	if timeout > 0 {
		sentry.Flush(timeout)
	}
	return nil
}
