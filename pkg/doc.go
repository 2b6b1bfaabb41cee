// Package pkg provides the core libraries for Fracnet fracture network modeling.
//
// # Overview
//
// Fracnet builds discrete fracture networks (DFNs): populations of planar
// fractures inside a bounded rock volume, together with the wells that
// traverse it. The pkg directory is organized into five main areas:
//
//  1. [geom] - Planar geometry (vectors, planes, polygons, intersections)
//  2. [dfn] - Domain model (fractures, wells, systems, networks)
//  3. [scene] + [generate] - Scene files and stochastic populations
//  4. [render] - Mesh assembly and export sinks (VTK, OBJ, JSON, graphs)
//  5. [pipeline] - Orchestration (load, build, compute, render) with caching
//
// # Architecture
//
// The typical data flow through Fracnet:
//
//	Scene File (TOML/JSON)
//	         |
//	   [scene] package (build system, wells, fracture population)
//	         |
//	   [dfn] package (intersections, density, clusters)
//	         |
//	   [render] package (triangulated fractures, wells, traces)
//	         |
//	   VTK/OBJ/JSON/DOT/SVG/PNG output
//
// # Quick Start
//
// Load a scene and export its network as a VTK mesh:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/fracnet/pkg/cache"
//	    "github.com/matzehuels/fracnet/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	defer runner.Close()
//
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    ScenePath: "demo.toml",
//	    Formats:   []string{pipeline.FormatVTK},
//	    Wells:     true,
//	    Traces:    true,
//	})
//	_ = result.Artifacts[pipeline.FormatVTK]
//
// # Main Packages
//
// [geom] - Vectors, planes, segments, polygons, and axis-aligned boxes, with
// the intersection kernel: plane-plane traces clipped to both polygons,
// segment-polygon piercing, and Sutherland-Hodgman box clipping.
//
// [dfn] - Fractures (disk or polygon), wells, the bounded system, and the
// network with computed intersections, P32 density, and connectivity
// clusters.
//
// [scene] - Declarative scene files (TOML or JSON) describing a system,
// wells, explicit fractures, and an optional stochastic generation block.
//
// [generate] - Stochastic fracture populations: uniform centers, bounded
// power-law sizes, Fisher-distributed orientations. Deterministic per seed.
//
// [render] - Mesh assembly (triangle fans for fractures, polylines for wells
// and traces) and sinks for VTK legacy, Wavefront OBJ, and JSON.
// [render/nodelink] draws the connectivity graph via Graphviz.
//
// [pipeline] - The load, build, compute, render pipeline shared by the CLI
// and the HTTP API, with per-stage caching keyed on scene content and
// options.
//
// [cache] - Cache keys and backends (file, Redis, null) for network
// statistics, meshes, and rendered artifacts.
//
// [store] - Named scene persistence (memory, MongoDB) behind the HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/dfn/...      # Specific package
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/fracnet/pkg/geom
// [dfn]: https://pkg.go.dev/github.com/matzehuels/fracnet/pkg/dfn
// [scene]: https://pkg.go.dev/github.com/matzehuels/fracnet/pkg/scene
// [generate]: https://pkg.go.dev/github.com/matzehuels/fracnet/pkg/generate
// [render]: https://pkg.go.dev/github.com/matzehuels/fracnet/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/fracnet/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/fracnet/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/fracnet/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/fracnet/pkg/store
package pkg
