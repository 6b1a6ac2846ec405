package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable indicates the canonical catalog could not be fetched
	ErrCatalogUnavailable = errors.New("canonical catalog is unavailable")

	// ErrExportFailed indicates the merged export could not be produced
	ErrExportFailed = errors.New("catalog export failed")
)
