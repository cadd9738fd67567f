package catalog

import "errors"

// Sentinel errors for the catalog package.
var (
	// ErrInvalidCatalog indicates the catalog document failed schema or semantic validation.
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")

	// ErrUnknownCategory indicates a category ID that the catalog does not define.
	ErrUnknownCategory = errors.New("catalog: unknown category")
)
