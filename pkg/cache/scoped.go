package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple projects or users can
// share one backend without key collisions.
//
// Example usage:
//
//	// Per-project keys on a shared Redis instance
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "proj:alpha:")
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

// NetworkKey generates a prefixed key for network caching.
func (k *ScopedKeyer) NetworkKey(sceneHash string, opts NetworkKeyOpts) string {
	return k.prefix + k.inner.NetworkKey(sceneHash, opts)
}

// MeshKey generates a prefixed key for mesh caching.
func (k *ScopedKeyer) MeshKey(networkHash string, opts MeshKeyOpts) string {
	return k.prefix + k.inner.MeshKey(networkHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(meshHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(meshHash, opts)
}
