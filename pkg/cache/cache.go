// Package cache provides pluggable caching for composed tiles and rendered
// artifacts.
//
// The pipeline caches at two levels: the composed element list (keyed by
// variant, mode, and tuning) and the serialized artifacts (keyed by the
// element-list hash and output format). Backends range from a local file
// cache for CLI use to Redis and MongoDB for the serve command.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cache level. Composed element lists are pure functions of
// their key, so they only expire to bound storage growth.
const (
	TTLTile     = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TileKeyOpts carries the inputs that affect a composed element list.
type TileKeyOpts struct {
	TileSize  int
	ThemeHash string // hash of the applied theme file, empty for defaults
}

// ArtifactKeyOpts carries the inputs that affect a serialized artifact.
type ArtifactKeyOpts struct {
	Format   string
	TileSize int
	Scale    float64 // PNG scale factor, zero otherwise
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// TileKey generates a key for a composed element list.
	TileKey(variant, mode string, opts TileKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(elementsHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates globally scoped cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TileKey generates a key for a composed element list.
func (k *DefaultKeyer) TileKey(variant, mode string, opts TileKeyOpts) string {
	return hashKey("tile", variant, mode, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(elementsHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", elementsHash, opts)
}
