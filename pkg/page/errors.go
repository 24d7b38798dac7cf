package page

import "errors"

// Sentinel errors for the page pipeline.
var (
	// ErrContentRootMisconfigured indicates the default page is missing or
	// unreadable. There is no further fallback, so this is a deployment fault.
	ErrContentRootMisconfigured = errors.New("page: content root misconfigured")

	// ErrPageUnreadable indicates a resolved page passed the existence check
	// but could not be read.
	ErrPageUnreadable = errors.New("page: content file unreadable")

	// ErrCatalogParse indicates a catalog file could not be decoded.
	ErrCatalogParse = errors.New("page: failed to parse catalog")

	// ErrInvalidCatalogEntry indicates a catalog entry has no usable identifier.
	ErrInvalidCatalogEntry = errors.New("page: invalid catalog entry")
)
