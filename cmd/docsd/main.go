// Command docsd serves the CVEFinder.io documentation site.
//
// Usage:
//
//	docsd [--config docsd.yaml] [--addr :8080] [--content-root ./content]
//	      [--default-page api-keys] [--log-level info]
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/cvefinder/docs"
	"github.com/cvefinder/docs/handlers"
	"github.com/cvefinder/docs/middlewares"
	"github.com/cvefinder/docs/pkg/logger"
	"github.com/cvefinder/docs/pkg/markdown"
	"github.com/cvefinder/docs/pkg/page"
	"github.com/cvefinder/docs/views"
)

func main() {
	// Error ignored: an invalid GOMAXPROCS env leaves the runtime default.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))

	if err := run(os.Args[1:], os.Getenv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, getenv func(string) string) error {
	cfg, err := loadConfig(args, getenv)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.NewWithConfig(logger.Config{
		Output: os.Stdout,
		Level:  level,
		Sentry: cfg.Sentry,
	}, middlewares.RequestIDExtractor()).With(slog.String("component", "docsd"))

	root, err := os.OpenRoot(cfg.ContentRoot)
	if err != nil {
		return fmt.Errorf("open content root: %w", err)
	}
	defer root.Close()

	catalog, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	svc := page.NewService(
		page.NewResolver(root.FS(),
			page.WithDefaultPage(cfg.DefaultPage),
			page.WithRootPath(cfg.ContentRoot),
		),
		markdown.New(),
		page.WithCatalog(catalog),
		page.WithDefaults(page.Defaults{
			Title:       cfg.Site.Title,
			Description: page.SiteDefaults().Description,
			Keywords:    page.SiteDefaults().Keywords,
		}),
		page.WithLogger(log),
	)

	app := newApp(svc, cfg.Site, log)

	return app.Run(cfg.Addr,
		docs.Logger(log),
		docs.ShutdownTimeout(cfg.ShutdownTimeout),
		docs.StartupHook(svc.Check),
		docs.ShutdownHook(logger.FlushSentry),
	)
}

func newApp(svc *page.Service, site views.Site, log *slog.Logger) *docs.App {
	return docs.New(
		docs.WithCustomLogger(log),
		docs.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog(),
			middlewares.Recover(),
			middlewares.SecurityHeaders(nil),
		),
		docs.WithStaticFiles("/static/", views.Static, "static"),
		docs.WithHandlers(handlers.NewDocs(svc, site)),
		docs.WithErrorHandler(handlers.ErrorHandler(site, svc.Catalog())),
		docs.WithNotFoundHandler(handlers.NotFound(site, svc.Catalog())),
		docs.WithMethodNotAllowedHandler(handlers.MethodNotAllowed(site, svc.Catalog())),
		docs.WithHealthChecks(docs.WithReadinessCheck("content", svc.Check)),
	)
}

func loadCatalog(path string) (*page.Catalog, error) {
	if path == "" {
		return page.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return page.LoadCatalog(data)
}
