package page

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DescriptionLimit is the maximum number of characters kept from an
// extracted description.
const DescriptionLimit = 160

// Extracted holds metadata pulled from rendered HTML.
// An empty field means nothing usable was found.
type Extracted struct {
	Title       string
	Description string
}

// Extract returns the title and description found in a rendered document.
func Extract(doc string) Extracted {
	var e Extracted
	e.Title, _ = ExtractTitle(doc)
	e.Description, _ = ExtractDescription(doc)
	return e
}

// ExtractTitle returns the text of the first h1 element.
// Nested markup is stripped and entities are decoded.
func ExtractTitle(doc string) (string, bool) {
	text, ok := firstElementText(doc, atom.H1)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// ExtractDescription returns the text of the first p element, cut to at most
// DescriptionLimit characters. The cut ignores word boundaries.
func ExtractDescription(doc string) (string, bool) {
	text, ok := firstElementText(doc, atom.P)
	if !ok || text == "" {
		return "", false
	}
	return truncate(text, DescriptionLimit), true
}

// firstElementText scans doc left to right and collects the text between the
// first start tag named tag and the next end tag of the same name.
func firstElementText(doc string, tag atom.Atom) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(doc))

	var (
		b     strings.Builder
		found bool
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			// End of input; an unterminated element still yields its text.
			return b.String(), found
		case html.StartTagToken:
			if name, _ := z.TagName(); !found && atom.Lookup(name) == tag {
				found = true
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); found && atom.Lookup(name) == tag {
				return b.String(), true
			}
		case html.TextToken:
			if found {
				b.Write(z.Text())
			}
		}
	}
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
