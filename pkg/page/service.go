package page

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cvefinder/docs/pkg/logger"
)

// Renderer converts markdown source to an HTML fragment.
type Renderer interface {
	Render(ctx context.Context, source []byte) (string, error)
}

// Page is everything the view layer needs for one request.
// It is built fresh per call and never shared.
type Page struct {
	// ID is the resolved identifier.
	ID string
	// Requested is the sanitized identifier from the request.
	Requested string
	// Path is the content file that was rendered.
	Path string
	// HTML is the rendered document.
	HTML string
	// Meta is the composed SEO metadata.
	Meta Metadata
	// Heading is the extracted title, or the default title when none was found.
	Heading string
	// Fallback is true when Requested did not resolve to itself.
	Fallback bool
}

// Service runs the page pipeline: sanitize, resolve, read, render, extract
// and compose.
type Service struct {
	resolver *Resolver
	renderer Renderer
	catalog  *Catalog
	defaults Defaults
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCatalog sets the curated metadata table. Defaults to DefaultCatalog.
func WithCatalog(c *Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithDefaults sets the fallback metadata. Defaults to SiteDefaults.
func WithDefaults(d Defaults) Option {
	return func(s *Service) {
		s.defaults = d
	}
}

// WithLogger sets the logger used for fallback and failure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a page service.
func NewService(resolver *Resolver, renderer Renderer, opts ...Option) *Service {
	s := &Service{
		resolver: resolver,
		renderer: renderer,
		catalog:  DefaultCatalog(),
		defaults: SiteDefaults(),
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the curated metadata table.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// DefaultID returns the identifier of the fallback page.
func (s *Service) DefaultID() string {
	return s.resolver.DefaultID()
}

// Check reports whether the default page can be served.
func (s *Service) Check(ctx context.Context) error {
	return s.resolver.Check(ctx)
}

// Load builds the page for a raw, untrusted identifier.
// Unknown identifiers fall back to the default page. Only an unreadable
// default page (ErrContentRootMisconfigured), an unreadable resolved page
// (ErrPageUnreadable) and renderer failures are returned as errors.
func (s *Service) Load(ctx context.Context, raw string) (*Page, error) {
	requested := Sanitize(raw)
	res := s.resolver.Resolve(requested)

	source, err := s.resolver.read(res)
	if err != nil {
		if res.ID == s.resolver.DefaultID() {
			return nil, fmt.Errorf("%w: read %q: %v", ErrContentRootMisconfigured, res.Path, err)
		}
		return nil, fmt.Errorf("%w: read %q: %v", ErrPageUnreadable, res.Path, err)
	}

	doc, err := s.renderer.Render(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", res.Path, err)
	}

	extracted := Extract(doc)
	p := &Page{
		ID:        res.ID,
		Requested: requested,
		Path:      res.Path,
		HTML:      doc,
		Meta:      Compose(res.ID, extracted, s.catalog, s.defaults),
		Heading:   first(extracted.Title, s.defaults.Title),
		Fallback:  res.ID != requested,
	}

	if p.Fallback {
		s.logger.DebugContext(ctx, "page fallback",
			slog.String("requested", requested),
			slog.String("page", res.ID),
		)
	}
	return p, nil
}
