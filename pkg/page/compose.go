package page

// Metadata is the final SEO metadata of a page.
type Metadata struct {
	Title       string
	Description string
	Keywords    string
}

// Defaults are used when neither the catalog nor the document provide a value.
type Defaults struct {
	Title       string
	Description string
	Keywords    string
}

// SiteDefaults returns the site-wide fallback metadata.
func SiteDefaults() Defaults {
	return Defaults{
		Title:       "CVEFinder.io Documentation",
		Description: "Official CVEFinder.io API documentation. Learn how to integrate vulnerability scanning into your applications.",
		Keywords:    "CVEFinder API, vulnerability scanner API, CVE API, security scanning API",
	}
}

// Compose merges metadata for the resolved page id. Each field is chosen
// independently: catalog value, then extracted value, then default.
// Keywords are never extracted.
func Compose(id string, doc Extracted, catalog *Catalog, defaults Defaults) Metadata {
	entry, _ := catalog.Lookup(id)
	return Metadata{
		Title:       first(entry.Title, doc.Title, defaults.Title),
		Description: first(entry.Description, doc.Description, defaults.Description),
		Keywords:    first(entry.Keywords, defaults.Keywords),
	}
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
