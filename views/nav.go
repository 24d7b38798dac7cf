package views

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cvefinder/docs/pkg/page"
)

// NavItem is one sidebar link.
type NavItem struct {
	ID     string
	Label  string
	Badge  string
	Active bool
}

// Navigation builds the sidebar from catalog entries in declaration order.
// The entry whose ID equals active is marked; entries without a label get
// one derived from the identifier.
func Navigation(catalog *page.Catalog, active string) []NavItem {
	entries := catalog.Entries()
	items := make([]NavItem, 0, len(entries))
	for _, e := range entries {
		label := e.Label
		if label == "" {
			label = labelFromID(e.ID)
		}
		items = append(items, NavItem{
			ID:     e.ID,
			Label:  label,
			Badge:  e.Badge,
			Active: e.ID == active,
		})
	}
	return items
}

// labelFromID turns "api-reference" into "Api Reference".
func labelFromID(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}
