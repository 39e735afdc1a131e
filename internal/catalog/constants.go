package catalog

import "time"

// Cache defaults
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 10 * time.Minute

	// CacheSchemaVersion invalidates cached entries when CatalogItem changes shape
	CacheSchemaVersion = "1.0"
)

// Error messages
const (
	ErrMsgReadCatalogFileFmt  = "failed to read catalog file %s: %w"
	ErrMsgParseCatalogFileFmt = "catalog file %s is not a JSON object of items: %v: %w"
	ErrMsgEmptyItemName       = "item name must not be empty"
	ErrMsgMalformedEntryFmt   = "malformed entry: %v"
)

// Log messages
const (
	LogMsgImportStarted   = "Catalog import started"
	LogMsgImportCompleted = "Catalog import completed"
	LogMsgEntryRejected   = "Catalog entry rejected"
)
