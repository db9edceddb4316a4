// Package cache provides the byte-blob cache used to memoize finished
// exports. Construction is deterministic, so entries never expire; a key
// either holds the exact artifact for its inputs or nothing.
package cache

import "context"

// Cache is a minimal byte-blob store keyed by opaque strings.
// Implementations must treat a missing key as a miss, not an error.
type Cache interface {
	// Get retrieves the value for key. The boolean reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key, overwriting any previous value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
