package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fracnet/pkg/cache"
	"github.com/matzehuels/fracnet/pkg/dfn"
	"github.com/matzehuels/fracnet/pkg/observability"
	"github.com/matzehuels/fracnet/pkg/render"
	"github.com/matzehuels/fracnet/pkg/render/nodelink"
	"github.com/matzehuels/fracnet/pkg/render/sink"
	"github.com/matzehuels/fracnet/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → compute → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	// Stage 1: Load
	sc, sceneHash, err := r.LoadScene(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	// Fold the effective seed into the options so cache keys distinguish
	// populations.
	if sc.Generate != nil {
		if opts.Seed != 0 {
			sc.Generate.Seed = opts.Seed
		} else {
			opts.Seed = sc.Generate.Seed
		}
	}

	result := &Result{
		SceneHash: sceneHash,
		Artifacts: make(map[string][]byte),
	}

	// Stage 2: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, sc.Name)
	net, err := sc.Build()
	result.Timing.BuildTime = time.Since(buildStart)
	observability.Pipeline().OnBuildComplete(ctx, sc.Name, netFractures(net), result.Timing.BuildTime, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Network = net

	r.Logger.Info("built network",
		"scene", sc.Name,
		"fractures", net.NbFractures(),
		"wells", net.System().NbWells(),
		"duration", result.Timing.BuildTime)

	// Stage 3: Compute
	computeStart := time.Now()
	observability.Pipeline().OnComputeStart(ctx, sc.Name, net.NbFractures())
	stats, statsHit, err := r.ComputeStatsWithCacheInfo(ctx, net, sceneHash, opts)
	result.Timing.ComputeTime = time.Since(computeStart)
	observability.Pipeline().OnComputeComplete(ctx, sc.Name,
		stats.FractureFracture+stats.FractureWell, result.Timing.ComputeTime, err)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	result.Stats = stats
	result.CacheInfo.StatsHit = statsHit

	r.Logger.Info("computed network",
		"fracture_fracture", stats.FractureFracture,
		"fracture_well", stats.FractureWell,
		"density", stats.Density,
		"duration", result.Timing.ComputeTime)

	// Stage 4: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, meshHit, renderHit, err := r.RenderWithCacheInfo(ctx, net, stats, sceneHash, opts)
	result.Timing.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Timing.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.MeshHit = meshHit
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Timing.RenderTime)

	return result, nil
}

// LoadScene loads the scene from the configured source and returns it with
// its content hash.
func (r *Runner) LoadScene(opts Options) (*scene.Scene, string, error) {
	sc := opts.Scene
	if opts.ScenePath != "" {
		loaded, err := scene.ReadSceneFile(opts.ScenePath)
		if err != nil {
			return nil, "", err
		}
		sc = loaded
	}
	if err := sc.Validate(); err != nil {
		return nil, "", err
	}

	data, err := scene.MarshalScene(sc)
	if err != nil {
		return nil, "", fmt.Errorf("hash scene: %w", err)
	}
	return sc, cache.Hash(data), nil
}

// ComputeStatsWithCacheInfo computes network statistics with caching and
// returns cache hit info. On a hit, intersection computation is deferred
// until something else needs it.
func (r *Runner) ComputeStatsWithCacheInfo(ctx context.Context, net *dfn.Network, sceneHash string, opts Options) (sink.NetworkStats, bool, error) {
	cacheKey := r.Keyer.NetworkKey(sceneHash, opts.NetworkKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var stats sink.NetworkStats
			if err := json.Unmarshal(data, &stats); err == nil {
				observability.Cache().OnCacheHit(ctx, "network")
				return stats, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "network")
	}

	net.ComputeIntersections()
	stats := sink.NetworkStats{
		Fractures:        net.NbFractures(),
		Wells:            net.System().NbWells(),
		FractureFracture: net.NbIntersections(dfn.KindFractureFracture),
		FractureWell:     net.NbIntersections(dfn.KindFractureWell),
		Density:          net.Density(),
		Clusters:         len(net.Clusters()),
	}

	if data, err := json.Marshal(stats); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLNetwork)
		observability.Cache().OnCacheSet(ctx, "network", len(data))
	}

	return stats, false, nil
}

// BuildMeshWithCacheInfo builds the 3D mesh with caching and returns cache
// hit info.
func (r *Runner) BuildMeshWithCacheInfo(ctx context.Context, net *dfn.Network, sceneHash string, opts Options) (*render.Mesh, bool, error) {
	networkHash := r.networkHash(sceneHash, opts)
	cacheKey := r.Keyer.MeshKey(networkHash, opts.MeshKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var m render.Mesh
			if err := json.Unmarshal(data, &m); err == nil {
				observability.Cache().OnCacheHit(ctx, "mesh")
				return &m, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "mesh")
	}

	m := render.BuildMesh(net, render.Options{
		ClipToSystem: opts.ClipToSystem,
		Wells:        opts.Wells,
		Traces:       opts.Traces,
	})

	if data, err := json.Marshal(m); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLMesh)
		observability.Cache().OnCacheSet(ctx, "mesh", len(data))
	}

	return m, false, nil
}

// RenderWithCacheInfo renders all requested formats with per-artifact
// caching. It returns the artifacts, whether the mesh came from cache, and
// whether every artifact came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, net *dfn.Network, stats sink.NetworkStats, sceneHash string, opts Options) (map[string][]byte, bool, bool, error) {
	var (
		mesh    *render.Mesh
		meshHit bool
		dot     string
	)
	if opts.NeedsMesh() {
		m, hit, err := r.BuildMeshWithCacheInfo(ctx, net, sceneHash, opts)
		if err != nil {
			return nil, false, false, err
		}
		mesh, meshHit = m, hit
	}
	if opts.NeedsGraph() {
		dot = nodelink.ToDOT(net, nodelink.Options{Detailed: opts.Detailed})
	}

	baseHash := r.networkHash(sceneHash, opts)
	artifacts := make(map[string][]byte)
	allCached := true

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(baseHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allCached = false

		data, err := r.renderFormat(format, mesh, stats, dot, opts)
		if err != nil {
			return nil, meshHit, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return artifacts, meshHit, allCached, nil
}

// renderFormat dispatches a single format to its sink.
func (r *Runner) renderFormat(format string, mesh *render.Mesh, stats sink.NetworkStats, dot string, opts Options) ([]byte, error) {
	switch format {
	case FormatVTK:
		return sink.RenderVTK(mesh, sink.WithVTKScalars())
	case FormatOBJ:
		return sink.RenderOBJ(mesh)
	case FormatJSON:
		return sink.RenderJSON(mesh, sink.WithJSONStats(stats))
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(dot)
	case FormatPNG:
		return nodelink.RenderPNG(dot)
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// networkHash derives the cache hash for a network from the scene hash and
// the effective seed.
func (r *Runner) networkHash(sceneHash string, opts Options) string {
	return cache.Hash([]byte(fmt.Sprintf("%s:%d", sceneHash, opts.Seed)))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func netFractures(net *dfn.Network) int {
	if net == nil {
		return 0
	}
	return net.NbFractures()
}
