package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/cvefinder/docs/pkg/sanitizer"
)

// Renderer turns markdown into an HTML fragment.
// It is safe for concurrent use.
type Renderer struct {
	md       goldmark.Markdown
	sanitize func(string) string
}

// New creates a Renderer. Highlighting and sanitizing are on by default.
func New(opts ...Option) *Renderer {
	cfg := config{highlight: true, sanitize: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	exts := []goldmark.Extender{extension.GFM, extension.Footnote}
	if cfg.highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(DefaultStyle),
			highlighting.WithFormatOptions(html.WithClasses(true)),
		))
	}

	var rendererOpts []goldmark.Option
	if cfg.hardWraps {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(gmhtml.WithHardWraps()))
	}

	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}, rendererOpts...)...)

	r := &Renderer{md: md}
	switch {
	case !cfg.sanitize:
		r.sanitize = func(s string) string { return s }
	case cfg.policy != nil:
		r.sanitize = cfg.policy.Sanitize
	default:
		r.sanitize = sanitizer.SanitizeDocument
	}
	return r
}

// Render converts source to HTML. A cancelled context is reported before
// any work starts; conversion itself runs to completion.
func (r *Renderer) Render(ctx context.Context, source []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return r.sanitize(buf.String()), nil
}

// HighlightCSS writes the stylesheet for the classes emitted by highlighted
// code blocks. An empty name selects DefaultStyle.
func HighlightCSS(w io.Writer, name string) error {
	if name == "" {
		name = DefaultStyle
	}
	style, ok := styles.Registry[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	if err := html.New(html.WithClasses(true)).WriteCSS(w, style); err != nil {
		return fmt.Errorf("write highlight css: %w", err)
	}
	return nil
}
