package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/cvefinder/docs"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority,omitempty"`
}

// sitemap lists the site root, the default page and every catalog page.
func (h *DocsHandler) sitemap(c docs.Context) error {
	lastmod := h.now().UTC().Format("2006-01-02")

	set := urlSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs, sitemapURL{Loc: h.site.RootURL() + "/", LastMod: lastmod, Priority: "1.0"})

	seen := map[string]bool{}
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		set.URLs = append(set.URLs, sitemapURL{Loc: h.site.PageURL(id), LastMod: lastmod, Priority: "0.8"})
	}

	add(h.svc.DefaultID())
	for _, e := range h.svc.Catalog().Entries() {
		add(e.ID)
	}

	return c.XML(http.StatusOK, set)
}
