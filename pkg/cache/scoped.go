package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The serve
// command uses it to keep tenants or deployments from sharing cache entries
// on a shared Redis or MongoDB backend.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "site:acme:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TileKey generates a prefixed key for a composed element list.
func (k *ScopedKeyer) TileKey(variant, mode string, opts TileKeyOpts) string {
	return k.prefix + k.inner.TileKey(variant, mode, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(elementsHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(elementsHash, opts)
}
