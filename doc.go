// Package docs serves the CVEFinder.io documentation site.
//
// Pages are markdown files in a content root. A request for /?page=<id>
// sanitizes the identifier, resolves it to a file (falling back to the
// default page), renders it to sanitized HTML and wraps it in a layout with
// SEO metadata taken from a curated catalog, the document itself, or
// site-wide defaults.
//
// This package is a thin HTTP layer over chi. Handlers implement [Handler]:
//
//	type DocsHandler struct{ svc *page.Service }
//
//	func (h *DocsHandler) Routes(r docs.Router) {
//	    r.GET("/", h.show)
//	}
//
// and the application is assembled with options:
//
//	app := docs.New(
//	    docs.WithLogger("docsd", middlewares.RequestIDExtractor()),
//	    docs.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.AccessLog(),
//	        middlewares.Recover(),
//	    ),
//	    docs.WithHandlers(handlers.NewDocs(svc, views.DefaultSite())),
//	    docs.WithHealthChecks(docs.WithReadinessCheck("content", svc.Check)),
//	)
//
//	if err := app.Run(":8080", docs.StartupHook(svc.Check)); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until SIGINT or SIGTERM and then shuts down gracefully.
//
// # Packages
//
//   - pkg/page: identifier sanitizing, resolution, extraction, catalog and composition
//   - pkg/markdown: goldmark rendering with highlighting and sanitizing
//   - pkg/sanitizer: bluemonday policies
//   - pkg/health: liveness and readiness checks
//   - pkg/logger: slog setup with optional Sentry reporting
//   - middlewares: request ID, recover, access log, security headers
//   - views: page layout and error page
//   - handlers: HTTP handlers for pages and the sitemap
package docs
