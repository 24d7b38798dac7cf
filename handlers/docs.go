// Package handlers serves documentation pages and the sitemap.
package handlers

import (
	"net/http"
	"time"

	"github.com/cvefinder/docs"
	"github.com/cvefinder/docs/pkg/page"
	"github.com/cvefinder/docs/views"
)

// DocsHandler renders documentation pages.
type DocsHandler struct {
	svc  *page.Service
	site views.Site
	now  func() time.Time
}

// DocsOption configures a DocsHandler.
type DocsOption func(*DocsHandler)

// WithClock sets the time source for article:modified_time and sitemap
// lastmod values. Defaults to time.Now.
func WithClock(now func() time.Time) DocsOption {
	return func(h *DocsHandler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewDocs creates a documentation handler.
func NewDocs(svc *page.Service, site views.Site, opts ...DocsOption) *DocsHandler {
	h := &DocsHandler{
		svc:  svc,
		site: site,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes declares the page and sitemap routes.
func (h *DocsHandler) Routes(r docs.Router) {
	r.GET("/", h.show)
	r.HEAD("/", h.show)
	r.GET("/sitemap.xml", h.sitemap)
}

// show renders the page named by the "page" query parameter.
// Unknown or unsafe identifiers fall back to the default page.
func (h *DocsHandler) show(c docs.Context) error {
	p, err := h.svc.Load(c, c.Query("page"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.Page(h.site, p, h.svc.Catalog(), h.now()))
}
