// Package sanitizer holds the HTML policies applied to rendered documentation.
package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	documentPolicy *bluemonday.Policy
	initOnce       sync.Once

	// Class names produced by the highlighter and footnote extension.
	classPattern = regexp.MustCompile(`^[a-zA-Z0-9_\- ]+$`)
)

func initPolicies() {
	initOnce.Do(func() {
		documentPolicy = DocumentPolicy()
	})
}

// DocumentPolicy returns a new policy for rendered markdown: the UGC baseline
// plus highlighter classes, heading anchors and GFM task list checkboxes.
// Relative links stay followable; absolute links get rel="nofollow".
func DocumentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(classPattern).OnElements(
		"pre", "code", "span", "div", "a", "sup", "li", "ol", "hr", "section",
	)
	p.AllowAttrs("id").Matching(bluemonday.Paragraph).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").Matching(regexp.MustCompile(`^(|checked|disabled)$`)).OnElements("input")
	p.AllowAttrs("role").Matching(regexp.MustCompile(`^doc-[a-z]+$`)).OnElements("a", "div", "section")
	p.RequireNoFollowOnLinks(false)
	p.RequireNoFollowOnFullyQualifiedLinks(true)
	return p
}

// SanitizeDocument applies DocumentPolicy to rendered markdown.
// Scripts, event handlers, inline styles and javascript: URLs are removed.
func SanitizeDocument(s string) string {
	initPolicies()
	return documentPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
