package middlewares

import "github.com/cvefinder/docs/internal"

// DefaultSecurityHeaders are set on every response unless overridden.
// The page shell uses inline styles and JSON-LD scripts, so the content
// security policy allows inline styles but no script execution.
var DefaultSecurityHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"Referrer-Policy":         "strict-origin-when-cross-origin",
	"Content-Security-Policy": "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; script-src 'none'; frame-ancestors 'none'; base-uri 'self'",
}

// SecurityHeaders returns middleware that sets response headers hardening the
// documentation pages. Entries in overrides replace or extend the defaults;
// an empty value removes a default header.
func SecurityHeaders(overrides map[string]string) internal.Middleware {
	headers := make(map[string]string, len(DefaultSecurityHeaders)+len(overrides))
	for k, v := range DefaultSecurityHeaders {
		headers[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			delete(headers, k)
			continue
		}
		headers[k] = v
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			for k, v := range headers {
				c.SetHeader(k, v)
			}
			return next(c)
		}
	}
}
