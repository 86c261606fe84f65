// Package cache provides content-addressed caching for pipeline results.
//
// Three backends implement the [Cache] interface: [FileCache] for CLI usage
// (XDG cache directory), [RedisCache] for server deployments, and
// [NullCache] to disable caching. Keys are derived from content hashes via
// [Hash] and [Key], so identical inputs always map to identical entries.
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact kind. Graph documents are pure derivations of
// their input and never go stale; artifact TTLs bound disk usage.
const (
	TTLGraph    = 0 // no expiry
	TTLTimeline = 0
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte payloads under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
