package markdown

import "github.com/microcosm-cc/bluemonday"

// DefaultStyle is the chroma style used for highlight CSS.
const DefaultStyle = "github"

type config struct {
	highlight bool
	hardWraps bool
	policy    *bluemonday.Policy
	sanitize  bool
}

// Option configures a Renderer.
type Option func(*config)

// WithHighlighting toggles chroma syntax highlighting of fenced code blocks.
func WithHighlighting(enabled bool) Option {
	return func(c *config) {
		c.highlight = enabled
	}
}

// WithHardWraps renders single newlines inside paragraphs as <br>.
func WithHardWraps() Option {
	return func(c *config) {
		c.hardWraps = true
	}
}

// WithPolicy replaces the post-render sanitizing policy.
// A nil policy disables the sanitizing pass.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(c *config) {
		c.policy = p
		c.sanitize = p != nil
	}
}
