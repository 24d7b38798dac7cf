package views_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvefinder/docs/pkg/page"
	"github.com/cvefinder/docs/views"
)

var jsonLD = regexp.MustCompile(`(?s)<script type="application/ld\+json">(.*?)</script>`)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func structuredData(t *testing.T, body string) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, m := range jsonLD.FindAllStringSubmatch(body, -1) {
		var v map[string]any
		require.NoError(t, json.Unmarshal([]byte(m[1]), &v), m[1])
		out = append(out, v)
	}
	return out
}

func apiKeysPage() *page.Page {
	entry, _ := page.DefaultCatalog().Lookup("api-keys")
	return &page.Page{
		ID:        "api-keys",
		Requested: "api-keys",
		Path:      "api-keys.md",
		HTML:      `<h1 id="api-keys">API Keys</h1><p>Create keys in the dashboard.</p>`,
		Meta:      page.Metadata{Title: entry.Title, Description: entry.Description, Keywords: entry.Keywords},
		Heading:   "API Keys",
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	modified := time.Date(2026, time.March, 4, 10, 30, 0, 0, time.UTC)
	body := render(t, views.Page(views.DefaultSite(), apiKeysPage(), page.DefaultCatalog(), modified))

	t.Run("head", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, body, "<title>API Keys Guide - Authentication &amp; Integration | CVEFinder.io Documentation</title>")
		assert.Contains(t, body, `<meta property="og:title" content="API Keys Guide - Authentication &amp; Integration | CVEFinder.io">`)
		assert.Contains(t, body, `<meta name="keywords" content="API keys, API authentication, CVEFinder integration, API access, programmatic scanning">`)
		assert.Contains(t, body, `<link rel="canonical" href="https://docs.cvefinder.io/?page=api-keys">`)
		assert.Contains(t, body, `<meta property="og:url" content="https://docs.cvefinder.io/?page=api-keys">`)
		assert.Contains(t, body, `<meta name="twitter:site" content="@cvefinder">`)
		assert.Contains(t, body, `<meta property="article:modified_time" content="2026-03-04T10:30:00Z">`)
		assert.Contains(t, body, `<link rel="sitemap" type="application/xml" href="https://docs.cvefinder.io/sitemap.xml">`)
		assert.Contains(t, body, "--primary-color")
		assert.Contains(t, body, ".chroma")
	})

	t.Run("sidebar", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, body, `<a href="?page=api-keys" class="active">API Keys <span class="badge pro">PRO</span></a>`)
		assert.Contains(t, body, `<a href="?page=faq">FAQ</a>`)
		assert.Contains(t, body, `<a href="?page=api-reference">API Reference</a>`)
	})

	t.Run("content", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, body, `<h1 id="api-keys">API Keys</h1><p>Create keys in the dashboard.</p>`)
	})

	t.Run("structured data", func(t *testing.T) {
		t.Parallel()

		blocks := structuredData(t, body)
		require.Len(t, blocks, 3)

		article := blocks[0]
		assert.Equal(t, "TechArticle", article["@type"])
		assert.Equal(t, "API Keys Guide - Authentication & Integration", article["headline"])
		assert.Equal(t, "https://docs.cvefinder.io/?page=api-keys", article["url"])
		assert.Equal(t, "2026-01-31T00:00:00Z", article["datePublished"])
		assert.Equal(t, "2026-03-04T10:30:00Z", article["dateModified"])

		crumbs := blocks[1]
		assert.Equal(t, "BreadcrumbList", crumbs["@type"])
		items, ok := crumbs["itemListElement"].([]any)
		require.True(t, ok)
		require.Len(t, items, 3)
		last, ok := items[2].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "API Keys", last["name"])

		app := blocks[2]
		assert.Equal(t, "SoftwareApplication", app["@type"])
		assert.Equal(t, "CVEFinder.io API", app["name"])
	})
}

func TestPage_EscapesDocumentValues(t *testing.T) {
	t.Parallel()

	p := &page.Page{
		ID:      "changelog",
		HTML:    "<p>body</p>",
		Meta:    page.Metadata{Title: `<script>alert("t")</script>`, Description: `"quoted" <b>`, Keywords: "k"},
		Heading: `</script><script>alert(1)</script>`,
	}
	body := render(t, views.Page(views.DefaultSite(), p, page.DefaultCatalog(), time.Now()))

	assert.NotContains(t, body, `<script>alert`)
	assert.NotContains(t, body, `</script><script>`)
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, `content="&#34;quoted&#34; &lt;b&gt;"`)

	blocks := structuredData(t, body)
	require.Len(t, blocks, 3)
	assert.Equal(t, `<script>alert("t")</script>`, blocks[0]["headline"])

	items, ok := blocks[1]["itemListElement"].([]any)
	require.True(t, ok)
	last, ok := items[2].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, `</script><script>alert(1)</script>`, last["name"])
}

func TestPage_UncuratedPageHasNoActiveEntry(t *testing.T) {
	t.Parallel()

	p := &page.Page{ID: "changelog", HTML: "<p>x</p>", Meta: page.Metadata{Title: "Changelog"}}
	body := render(t, views.Page(views.DefaultSite(), p, page.DefaultCatalog(), time.Now()))

	assert.NotContains(t, body, `class="active"`)
	assert.Contains(t, body, `href="https://docs.cvefinder.io/?page=changelog"`)
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	t.Run("with message", func(t *testing.T) {
		t.Parallel()

		body := render(t, views.ErrorPage(views.DefaultSite(), http.StatusNotFound, "No page <here>", page.DefaultCatalog()))
		assert.Contains(t, body, "<title>Not Found | CVEFinder.io Documentation</title>")
		assert.Contains(t, body, "<h1>404 Not Found</h1>")
		assert.Contains(t, body, "<p>No page &lt;here&gt;</p>")
		assert.Contains(t, body, `<meta name="robots" content="noindex">`)
		assert.NotContains(t, body, `class="active"`)
		assert.NotContains(t, body, "application/ld+json")
	})

	t.Run("empty message uses status text", func(t *testing.T) {
		t.Parallel()

		body := render(t, views.ErrorPage(views.DefaultSite(), http.StatusInternalServerError, "", nil))
		assert.Contains(t, body, "<p>Internal Server Error</p>")
	})
}

func TestStatic(t *testing.T) {
	t.Parallel()

	data, err := fs.ReadFile(views.Static, "static/favicon.svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
