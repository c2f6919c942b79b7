// Package cache provides content caching for generated arrow documents.
//
// Rendering is cheap but not free, and the server and batch paths render
// the same configurations repeatedly. The Cache interface abstracts the
// backend:
//   - FileCache: directory-backed cache for CLI usage
//   - RedisCache: shared cache for multi-instance server deployments
//   - NullCache: disables caching
//
// Keys are derived from the full generation options through a Keyer, so
// any option change produces a distinct key.
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact class.
const (
	// TTLArtifact applies to rendered SVG documents. Generation is
	// deterministic for a fixed key, so entries only expire to bound
	// storage.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL stores without
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys from generation inputs.
type Keyer interface {
	// ArtifactKey returns the key for a rendered document: the pattern
	// name plus a hash of the complete resolved options.
	ArtifactKey(pattern string, optsHash string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered document.
func (k *DefaultKeyer) ArtifactKey(pattern string, optsHash string) string {
	return hashKey("svg", pattern, optsHash)
}
