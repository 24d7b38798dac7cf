package middlewares

import (
	"log/slog"
	"time"

	"github.com/cvefinder/docs/internal"
)

// AccessLog returns middleware that logs one line per request with method,
// path, query, status, response size and duration. Responses with status
// 500 and above are logged at error level, 4xx at warn, the rest at info.
// On a single route, an error that has not been written yet is logged with
// the status of its HTTPError, or 500.
func AccessLog() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status := c.ResponseWriter().Status()
			if err != nil && !c.Written() {
				status = statusFromError(err)
			}

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			req := c.Request()
			c.Logger().Log(c, level, "request",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("query", req.URL.RawQuery),
				slog.Int("status", status),
				slog.Int64("size", c.ResponseWriter().Size()),
				slog.Duration("duration", time.Since(start)),
			)

			return err
		}
	}
}

// statusFromError predicts the status the error handler will answer with.
func statusFromError(err error) int {
	if he := internal.AsHTTPError(err); he != nil {
		return he.Code
	}
	return 500
}
