// Package cache provides content-addressed caching for pipeline results:
// normalized schemas, validation reports, and rendered artifacts.
//
// Four backends share one interface: a file cache for CLI usage, redis and
// mongo for the hosted canvas service, and a null cache for tests and for
// disabling caching outright. Values are opaque byte slices; keys are
// derived from content hashes so a cache never serves stale results for an
// edited schema.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the storage interface shared by all backends.
// Implementations must treat a missing key as a miss, not an error.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration; a
	// negative TTL stores an entry that is already expired.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is the expiration applied to pipeline cache entries unless a
// caller chooses otherwise.
const DefaultTTL = 24 * time.Hour

// Hash computes the SHA-256 hash of data as a 64-character hex string.
// Pipeline stages use it to content-address schemas and artifacts.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a cache key by hashing the parts under a prefix.
// The full SHA-256 hash is kept to rule out collisions.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// NormalizedKey is the cache key for the normalized form of the schema with
// the given content hash.
func NormalizedKey(schemaHash string) string {
	return hashKey("normalized", schemaHash)
}

// ValidationKey is the cache key for the validation report of the
// normalized schema with the given content hash.
func ValidationKey(schemaHash string) string {
	return hashKey("validation", schemaHash)
}

// ArtifactKey is the cache key for a rendered artifact (for example the
// link-graph SVG) in the given format.
func ArtifactKey(schemaHash, format string) string {
	return hashKey("artifact", schemaHash, format)
}

// Scoped wraps a Cache with a key prefix for multi-tenant isolation, so
// different users of the hosted service get separate namespaces.
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a prefix-scoped view of inner.
func NewScoped(inner Cache, prefix string) *Scoped {
	return &Scoped{inner: inner, prefix: prefix}
}

func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *Scoped) Close() error { return s.inner.Close() }

var _ Cache = (*Scoped)(nil)
