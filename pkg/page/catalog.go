package page

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is a curated set of metadata for one page.
// Empty fields are treated as absent.
type Entry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`

	// Label is the sidebar text. Badge is an optional marker shown next to it.
	Label string `yaml:"label"`
	Badge string `yaml:"badge"`
}

// Catalog is a read-only table of curated entries keyed by page identifier.
// It is never modified after construction, so concurrent reads need no locking.
type Catalog struct {
	byID  map[string]Entry
	order []string
}

// NewCatalog builds a catalog from entries, keeping their order for navigation.
// Identifiers are sanitized; entries whose identifier sanitizes to empty are
// skipped and a later entry with the same identifier replaces an earlier one.
func NewCatalog(entries ...Entry) *Catalog {
	c := &Catalog{byID: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		e.ID = Sanitize(e.ID)
		if e.ID == "" {
			continue
		}
		if _, dup := c.byID[e.ID]; !dup {
			c.order = append(c.order, e.ID)
		}
		c.byID[e.ID] = e
	}
	return c
}

// Lookup returns the curated entry for id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.byID[id]
	return e, ok
}

// Entries returns a copy of all entries in declaration order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// catalogFile is the YAML layout accepted by LoadCatalog.
type catalogFile struct {
	Pages []Entry `yaml:"pages"`
}

// LoadCatalog decodes a YAML catalog of the form:
//
//	pages:
//	  - id: faq
//	    label: FAQ
//	    title: FAQ - Frequently Asked Questions
//	    description: ...
//	    keywords: ...
func LoadCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}
	for i, e := range f.Pages {
		if Sanitize(e.ID) == "" {
			return nil, fmt.Errorf("%w: entry %d has identifier %q", ErrInvalidCatalogEntry, i, e.ID)
		}
	}
	return NewCatalog(f.Pages...), nil
}

// DefaultCatalog returns the compiled-in curated metadata.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Entry{
			ID:          "faq",
			Label:       "FAQ",
			Title:       "FAQ - Frequently Asked Questions",
			Description: "Find answers to common questions about CVEFinder.io vulnerability scanning, pricing, features, bulk scans, and API integration.",
			Keywords:    "CVEFinder FAQ, vulnerability scanner questions, scanning limits, bulk scan, API questions",
		},
		Entry{
			ID:          "api-reference",
			Label:       "API Reference",
			Title:       "API Reference - Complete REST API Documentation",
			Description: "Complete CVEFinder.io REST API reference. Scan websites, query CVE database, manage monitoring, bulk scans, and more with our comprehensive API.",
			Keywords:    "CVEFinder API, REST API, vulnerability scanner API, CVE API, bulk scan API, security API documentation",
		},
		Entry{
			ID:          "api-keys",
			Label:       "API Keys",
			Badge:       "PRO",
			Title:       "API Keys Guide - Authentication & Integration",
			Description: "Learn how to generate and manage CVEFinder.io API keys for programmatic access. Integrate vulnerability scanning into your CI/CD pipeline.",
			Keywords:    "API keys, API authentication, CVEFinder integration, API access, programmatic scanning",
		},
	)
}
