// Package page turns an untrusted page identifier into a rendered
// documentation page with SEO metadata.
//
// # Pipeline
//
// A request flows through these steps:
//
//  1. [Sanitize] lower-cases the raw identifier and drops every byte outside
//     [a-z0-9-]. Nothing is rejected.
//  2. [Resolver.Resolve] maps the identifier to "<root>/<id>.md", falling back
//     to the default page when no such file exists.
//  3. The file is read and passed to a [Renderer].
//  4. [Extract] pulls the first h1 and the first p out of the rendered HTML.
//  5. [Compose] merges catalog, extracted and default values per field.
//
// [Service.Load] runs all of them:
//
//	resolver := page.NewResolver(root.FS(), page.WithRootPath(dir))
//	svc := page.NewService(resolver, markdown.New())
//
//	p, err := svc.Load(ctx, r.URL.Query().Get("page"))
//	if err != nil {
//	    // errors.Is(err, page.ErrContentRootMisconfigured) is a deployment fault
//	}
//
// # Metadata priority
//
// Each of title, description and keywords is chosen independently:
// curated [Catalog] entry, then the extracted value, then [Defaults].
// Extracted descriptions are cut to [DescriptionLimit] characters before any
// escaping, which is left to the view layer.
//
// # Errors
//
//   - [ErrContentRootMisconfigured] - the default page is missing or unreadable
//   - [ErrPageUnreadable] - a resolved page could not be read
//   - [ErrCatalogParse], [ErrInvalidCatalogEntry] - bad catalog file
package page
