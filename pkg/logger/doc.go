// Package logger builds the JSON slog loggers used across the docs server.
//
// Loggers write JSON lines and run every record through a decorator that
// appends request-scoped attributes pulled from the context, such as the
// request ID assigned by middlewares.RequestID:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "page served", slog.String("page", "faq"))
//	// {"level":"INFO","msg":"page served","page":"faq","request_id":"..."}
//
// [NewWithConfig] adds a minimum level, an output writer and optional Sentry
// forwarding. Without a DSN, or when the SDK fails to initialize, logging
// stays local:
//
//	log := logger.NewWithConfig(logger.Config{
//		Level:  slog.LevelDebug,
//		Sentry: logger.SentryConfig{DSN: os.Getenv("SENTRY_DSN")},
//	})
//	defer logger.FlushSentry(context.Background())
//
// Errors become Sentry issues; warnings are kept as searchable logs.
package logger
