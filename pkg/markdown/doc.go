// Package markdown converts documentation sources to HTML fragments.
//
// The renderer uses goldmark with GitHub Flavored Markdown, footnotes,
// automatic heading identifiers and chroma syntax highlighting. Highlighted
// code carries CSS classes instead of inline styles; [HighlightCSS] produces
// the matching stylesheet.
//
// Raw HTML in sources is not passed through. Output is additionally run
// through a bluemonday policy from pkg/sanitizer before it is returned.
//
//	r := markdown.New()
//	html, err := r.Render(ctx, source)
package markdown
