// Package internal holds the HTTP framework behind the documentation server.
//
// Import "github.com/cvefinder/docs" instead; it re-exports the public API.
//
// # Core Types
//
//   - App: routing, middleware, health endpoints and graceful shutdown
//   - Context: request/response access, rendering and structured logging
//   - Router: the read-only route declaration surface handed to handlers
//   - Handler: types that declare routes on a Router
//   - HandlerFunc, Middleware, ErrorHandler: the function shapes around them
//   - HTTPError: a status code plus a user-facing message and wrapped cause
//
// Context embeds context.Context, so it can be handed to anything that takes
// a standard context, including page.Service.Load:
//
//	func (h *Docs) show(c docs.Context) error {
//	    p, err := h.pages.Load(c, c.Query("page"))
//	    if err != nil {
//	        return err
//	    }
//	    return c.Render(http.StatusOK, views.Page(h.site, p))
//	}
//
// # Errors
//
// A handler returns its error; the App passes it to the ErrorHandler set with
// WithErrorHandler, or answers 500 when none is set. Nothing is written when
// the handler already started the response.
//
// # Lifecycle
//
// App.Run runs startup hooks, listens, and on SIGINT/SIGTERM shuts the server
// down within the shutdown timeout before running shutdown hooks.
package internal
