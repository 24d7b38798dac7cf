package page

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
)

// Extension is the file extension of every content file.
const Extension = ".md"

// DefaultPage is the identifier served when a request names no existing page.
const DefaultPage = "api-keys"

// Resolved is the outcome of resolving a sanitized identifier.
type Resolved struct {
	// ID is the identifier that will be served.
	ID string
	// Name is the file name relative to the content root.
	Name string
	// Path is the content root joined with Name, for logs and diagnostics.
	Path string
}

// Resolver maps sanitized identifiers to content files inside a fixed root.
// It is safe for concurrent use; it holds no mutable state.
type Resolver struct {
	fsys      fs.FS
	root      string
	defaultID string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDefaultPage sets the identifier used as fallback.
// Defaults to DefaultPage. The value is sanitized before use.
func WithDefaultPage(id string) ResolverOption {
	return func(r *Resolver) {
		if id = Sanitize(id); id != "" {
			r.defaultID = id
		}
	}
}

// WithRootPath sets the path reported in Resolved.Path.
// It does not change which filesystem is consulted.
func WithRootPath(root string) ResolverOption {
	return func(r *Resolver) {
		r.root = strings.TrimRight(root, "/")
	}
}

// NewResolver creates a Resolver over fsys, which must be rooted at the
// content root. Production code should pass os.Root.FS so that symlinks
// cannot lead outside the root.
func NewResolver(fsys fs.FS, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		fsys:      fsys,
		root:      ".",
		defaultID: DefaultPage,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultID returns the fallback identifier.
func (r *Resolver) DefaultID() string {
	return r.defaultID
}

// Resolve returns the content file for id, or the default page when id has
// no regular file in the root. A missing candidate is not an error.
// The fallback is not checked for existence; see Check.
func (r *Resolver) Resolve(id string) Resolved {
	if id != "" && r.exists(id+Extension) {
		return r.resolved(id)
	}
	return r.resolved(r.defaultID)
}

// Check reports whether the default page is present in the content root.
func (r *Resolver) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := r.defaultID + Extension
	info, err := fs.Stat(r.fsys, name)
	if err != nil {
		return fmt.Errorf("%w: default page %q: %v", ErrContentRootMisconfigured, r.path(name), err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: default page %q is not a regular file", ErrContentRootMisconfigured, r.path(name))
	}
	return nil
}

// read returns the content of a resolved page.
func (r *Resolver) read(res Resolved) ([]byte, error) {
	return fs.ReadFile(r.fsys, res.Name)
}

func (r *Resolver) exists(name string) bool {
	info, err := fs.Stat(r.fsys, name)
	return err == nil && info.Mode().IsRegular()
}

func (r *Resolver) resolved(id string) Resolved {
	name := id + Extension
	return Resolved{ID: id, Name: name, Path: r.path(name)}
}

func (r *Resolver) path(name string) string {
	return r.root + "/" + name
}
