// Package cache provides byte-level caching for pipeline stages.
//
// The pipeline hashes its inputs at each stage (scene definition, computed
// network, mesh, rendered artifact) and consults the cache before doing
// work. Backends:
//   - file: directory-based cache for CLI usage
//   - redis: shared cache for server deployments
//   - null: disabled caching
//
// Keys are produced by a [Keyer] so that all backends agree on the key
// schema and tests can substitute deterministic keys.
package cache

import (
	"context"
	"time"
)

// Default TTLs per pipeline stage. Computed networks are pure functions of
// the scene and seed, so long TTLs are safe; artifacts are cheap to rebuild
// from a cached mesh and expire sooner.
const (
	TTLNetwork  = 7 * 24 * time.Hour
	TTLMesh     = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// NetworkKeyOpts carries the inputs that affect network computation beyond
// the scene itself.
type NetworkKeyOpts struct {
	Seed uint64 `json:"seed"`
}

// MeshKeyOpts carries the mesh construction options.
type MeshKeyOpts struct {
	ClipToSystem bool `json:"clip_to_system"`
	Wells        bool `json:"wells"`
	Traces       bool `json:"traces"`
}

// ArtifactKeyOpts carries the rendering options for a serialized artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer generates cache keys for each pipeline stage.
type Keyer interface {
	// NetworkKey keys a computed network by the scene hash and generation
	// options.
	NetworkKey(sceneHash string, opts NetworkKeyOpts) string

	// MeshKey keys a built mesh by the network hash and mesh options.
	MeshKey(networkHash string, opts MeshKeyOpts) string

	// ArtifactKey keys a rendered artifact by the mesh hash and format.
	ArtifactKey(meshHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key schema: stage prefix plus a hash of the
// input hash and options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// NetworkKey generates a key for network caching.
func (k *DefaultKeyer) NetworkKey(sceneHash string, opts NetworkKeyOpts) string {
	return hashKey("network", sceneHash, opts)
}

// MeshKey generates a key for mesh caching.
func (k *DefaultKeyer) MeshKey(networkHash string, opts MeshKeyOpts) string {
	return hashKey("mesh", networkHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(meshHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", meshHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
