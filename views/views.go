package views

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"

	"github.com/cvefinder/docs/pkg/markdown"
	"github.com/cvefinder/docs/pkg/page"
)

var (
	//go:embed templates
	templateFS embed.FS

	// Static holds assets served under /static/.
	//
	//go:embed static
	Static embed.FS

	funcs = template.FuncMap{
		"lower": strings.ToLower,
	}

	pageTemplate  = mustParse("templates/page.html")
	errorTemplate = mustParse("templates/error.html")

	stylesheet = sync.OnceValue(func() template.CSS {
		base, err := templateFS.ReadFile("templates/base.css")
		if err != nil {
			panic(err)
		}
		var b strings.Builder
		b.Write(base)
		b.WriteString("\n")
		_ = markdown.HighlightCSS(&b, markdown.DefaultStyle)
		return template.CSS(b.String()) //nolint:gosec // generated from embedded files
	})
)

func mustParse(name string) *template.Template {
	return template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", name))
}

type layout struct {
	Site  Site
	Title string
	Nav   []NavItem
	CSS   template.CSS
}

type pageView struct {
	layout
	Description string
	Keywords    string
	URL         string
	Modified    string
	Content     template.HTML

	TechArticle techArticle
	Breadcrumb  breadcrumbList
	Application softwareApplication
}

type errorView struct {
	layout
	Code    int
	Status  string
	Message string
}

// Page renders a documentation page. The canonical URL and the active
// sidebar entry use the resolved identifier; modified is reported as
// article:modified_time and dateModified.
func Page(site Site, p *page.Page, catalog *page.Catalog, modified time.Time) templ.Component {
	v := pageView{
		layout: layout{
			Site:  site,
			Title: p.Meta.Title,
			Nav:   Navigation(catalog, p.ID),
			CSS:   stylesheet(),
		},
		Description: p.Meta.Description,
		Keywords:    p.Meta.Keywords,
		URL:         site.PageURL(p.ID),
		Modified:    modified.Format(time.RFC3339),
		Content:     template.HTML(p.HTML), //nolint:gosec // sanitized by the markdown renderer
	}
	v.TechArticle = newTechArticle(site, v, modified)
	v.Breadcrumb = newBreadcrumb(site, p.Heading, v.URL)
	v.Application = newSoftwareApplication(site)

	return templ.FromGoHTML(pageTemplate, v)
}

// ErrorPage renders an error response body. An empty message falls back to
// the status text.
func ErrorPage(site Site, code int, message string, catalog *page.Catalog) templ.Component {
	status := http.StatusText(code)
	if message == "" {
		message = status
	}
	return templ.FromGoHTML(errorTemplate, errorView{
		layout: layout{
			Site:  site,
			Title: status,
			Nav:   Navigation(catalog, ""),
			CSS:   stylesheet(),
		},
		Code:    code,
		Status:  status,
		Message: message,
	})
}
