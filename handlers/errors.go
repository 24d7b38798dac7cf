package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cvefinder/docs"
	"github.com/cvefinder/docs/middlewares"
	"github.com/cvefinder/docs/pkg/page"
	"github.com/cvefinder/docs/views"
)

const genericMessage = "Something went wrong while loading this page. Please try again later."

// ErrorHandler renders handler errors as error pages.
//
// An HTTPError keeps its status and message. A misconfigured content root,
// an unreadable page, a renderer failure and any other error become a 500
// with a generic message; the cause is logged but never shown.
func ErrorHandler(site views.Site, catalog *page.Catalog) docs.ErrorHandler {
	return func(c docs.Context, err error) error {
		code := http.StatusInternalServerError
		message := genericMessage

		switch he := docs.AsHTTPError(err); {
		case he != nil:
			code = he.StatusCode()
			if code >= http.StatusInternalServerError {
				c.LogError("request failed", slog.Int("status", code), slog.Any("error", err))
			} else {
				message = he.Message
			}
		case errors.Is(err, page.ErrContentRootMisconfigured):
			c.LogError("content root misconfigured",
				slog.String("kind", "content_root"),
				slog.Any("error", err),
			)
		case errors.Is(err, page.ErrPageUnreadable):
			c.LogError("page unreadable", slog.String("kind", "page_read"), slog.Any("error", err))
		case middlewares.IsPanicError(err):
			// Recover already logged the panic with its stack.
		default:
			c.LogError("request failed", slog.Any("error", err))
		}

		return c.Render(code, views.ErrorPage(site, code, message, catalog))
	}
}

// NotFound renders the 404 page for unknown paths.
func NotFound(site views.Site, catalog *page.Catalog) docs.HandlerFunc {
	return func(c docs.Context) error {
		return c.Render(http.StatusNotFound, views.ErrorPage(site, http.StatusNotFound, "The page you are looking for does not exist.", catalog))
	}
}

// MethodNotAllowed renders the 405 page.
func MethodNotAllowed(site views.Site, catalog *page.Catalog) docs.HandlerFunc {
	return func(c docs.Context) error {
		c.SetHeader("Allow", "GET, HEAD")
		return c.Render(http.StatusMethodNotAllowed, views.ErrorPage(site, http.StatusMethodNotAllowed, "", catalog))
	}
}
