// Package views renders the documentation layout and error pages.
//
// Templates are html/template files embedded in the binary and exposed as
// templ components, so every value reaching the page (titles, meta
// attributes, canonical URLs, JSON-LD) goes through contextual escaping.
package views

import (
	"net/url"
	"strings"
	"time"
)

// Site holds the site-wide values used in page heads and structured data.
type Site struct {
	// Name is the organization name, e.g. "CVEFinder.io".
	Name string `yaml:"name"`
	// Title is appended to every page title and used as og:site_name.
	Title string `yaml:"title"`
	// HomeURL is the main product site.
	HomeURL string `yaml:"home_url"`
	// DocsURL is the public base URL of this documentation site.
	DocsURL    string `yaml:"docs_url"`
	ImageURL   string `yaml:"image_url"`
	LogoURL    string `yaml:"logo_url"`
	FaviconURL string `yaml:"favicon_url"`
	// Twitter is the handle used for twitter:site and twitter:creator.
	Twitter   string    `yaml:"twitter"`
	Published time.Time `yaml:"published"`
}

// DefaultSite returns the production values for docs.cvefinder.io.
func DefaultSite() Site {
	return Site{
		Name:       "CVEFinder.io",
		Title:      "CVEFinder.io Documentation",
		HomeURL:    "https://cvefinder.io",
		DocsURL:    "https://docs.cvefinder.io",
		ImageURL:   "https://cvefinder.io/og-image.png",
		LogoURL:    "https://cvefinder.io/assets/img/cvefinder_logo.png",
		FaviconURL: "/static/favicon.svg",
		Twitter:    "@cvefinder",
		Published:  time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
}

// WithDefaults fills empty fields from DefaultSite.
func (s Site) WithDefaults() Site {
	d := DefaultSite()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.Name, d.Name)
	fill(&s.Title, d.Title)
	fill(&s.HomeURL, d.HomeURL)
	fill(&s.DocsURL, d.DocsURL)
	fill(&s.ImageURL, d.ImageURL)
	fill(&s.LogoURL, d.LogoURL)
	fill(&s.FaviconURL, d.FaviconURL)
	fill(&s.Twitter, d.Twitter)
	if s.Published.IsZero() {
		s.Published = d.Published
	}
	return s
}

// RootURL is DocsURL without a trailing slash.
func (s Site) RootURL() string {
	return strings.TrimRight(s.DocsURL, "/")
}

// PageURL is the canonical URL of a page.
func (s Site) PageURL(id string) string {
	return s.RootURL() + "/?page=" + url.QueryEscape(id)
}

// SitemapURL is the absolute URL of the sitemap.
func (s Site) SitemapURL() string {
	return s.RootURL() + "/sitemap.xml"
}
