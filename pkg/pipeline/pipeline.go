// Package pipeline provides the core modeling pipeline for fracnet.
//
// This package implements the complete load → build → compute → render
// pipeline that can be used by CLI, API, and worker components. By
// centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read a scene definition from a file or take one inline
//  2. Build: Assemble the bounded system, wells, and fracture population
//  3. Compute: Intersections, density, and connectivity clusters
//  4. Render: Generate output in various formats (VTK, OBJ, JSON, DOT, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ScenePath: "demo.toml",
//	    Formats:   []string{"vtk", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vtk := result.Artifacts["vtk"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fracnet/pkg/cache"
	"github.com/matzehuels/fracnet/pkg/dfn"
	"github.com/matzehuels/fracnet/pkg/generate"
	"github.com/matzehuels/fracnet/pkg/render/sink"
	"github.com/matzehuels/fracnet/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

// DefaultSeed is the default random seed for stochastic generation, shared
// with the generate package so scenes behave identically everywhere.
const DefaultSeed = generate.DefaultSeed

// Format constants for output formats.
const (
	FormatVTK  = "vtk"
	FormatOBJ  = "obj"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatVTK:  true,
	FormatOBJ:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// meshFormats are the formats derived from the 3D mesh; the remainder are
// derived from the connectivity graph.
var meshFormats = map[string]bool{
	FormatVTK:  true,
	FormatOBJ:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the modeling pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one of ScenePath and Scene must be set.
	ScenePath string       `json:"scene_path,omitempty"`
	Scene     *scene.Scene `json:"scene,omitempty"`

	// Seed overrides the generate block's seed when nonzero, so the same
	// scene file can be rerun with different populations.
	Seed    uint64 `json:"seed,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	// Mesh options
	ClipToSystem bool `json:"clip_to_system,omitempty"`
	Wells        bool `json:"wells,omitempty"`
	Traces       bool `json:"traces,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Network is the built network with computed intersections.
	Network *dfn.Network

	// SceneHash is the content hash of the loaded scene.
	SceneHash string

	// Stats contains the derived network statistics.
	Stats sink.NetworkStats

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Timing contains per-stage durations.
	Timing Timing

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Timing contains pipeline execution durations.
type Timing struct {
	BuildTime   time.Duration
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	StatsHit  bool // Whether network statistics came from cache
	MeshHit   bool // Whether the mesh came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: vtk, obj, json, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ScenePath == "" && o.Scene == nil {
		return fmt.Errorf("scene_path or scene is required")
	}
	if o.ScenePath != "" && o.Scene != nil {
		return fmt.Errorf("scene_path and scene are mutually exclusive")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatVTK}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// NeedsMesh returns true if any requested format is derived from the mesh.
func (o *Options) NeedsMesh() bool {
	for _, f := range o.Formats {
		if meshFormats[f] {
			return true
		}
	}
	return false
}

// NeedsGraph returns true if any requested format is derived from the
// connectivity graph.
func (o *Options) NeedsGraph() bool {
	for _, f := range o.Formats {
		if !meshFormats[f] {
			return true
		}
	}
	return false
}

// NetworkKeyOpts returns cache key options for network statistics.
func (o *Options) NetworkKeyOpts() cache.NetworkKeyOpts {
	return cache.NetworkKeyOpts{
		Seed: o.Seed,
	}
}

// MeshKeyOpts returns cache key options for mesh construction.
func (o *Options) MeshKeyOpts() cache.MeshKeyOpts {
	return cache.MeshKeyOpts{
		ClipToSystem: o.ClipToSystem,
		Wells:        o.Wells,
		Traces:       o.Traces,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
	}
}
