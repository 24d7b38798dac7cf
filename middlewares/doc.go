// Package middlewares provides the HTTP middleware used by the documentation
// server.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID or X-Correlation-ID header when it
// is safe to log, and otherwise generates a UUID. The ID is echoed in the
// response and stored in the request context.
//
//	app := docs.New(
//	    docs.WithLogger("docsd", middlewares.RequestIDExtractor()),
//	    docs.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns a panic into a *PanicError and hands it to the error handler:
//
//	app := docs.New(
//	    docs.WithMiddleware(middlewares.Recover()),
//	    docs.WithErrorHandler(func(c docs.Context, err error) error {
//	        if middlewares.IsPanicError(err) {
//	            return c.String(http.StatusInternalServerError, "internal error")
//	        }
//	        return c.String(http.StatusInternalServerError, err.Error())
//	    }),
//	)
//
// # Access log
//
// AccessLog writes one record per request with status, size and duration.
// Register it after RequestID so records carry the request ID.
//
// # Security headers
//
// SecurityHeaders sets DefaultSecurityHeaders on every response. Overrides
// replace individual headers and an empty value removes one.
package middlewares
