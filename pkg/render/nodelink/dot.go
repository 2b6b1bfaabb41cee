// Package nodelink renders the connectivity graph of a fracture network:
// fractures and wells as nodes, computed intersections as edges. The graph
// view complements the 3D mesh exports when the question is "what connects
// to what" rather than "where is it".
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fracnet/pkg/dfn"
)

// Options configures connectivity graph rendering.
type Options struct {
	// Detailed includes size and area in fracture node labels.
	// When false, only the id is shown.
	Detailed bool
}

// ToDOT converts a network's connectivity to Graphviz DOT format. The
// resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
//
// Fracture nodes are ellipses named F<id>; well nodes are boxes named by
// the well's display name (or W<id>). Fracture-well edges are dashed to
// distinguish borehole hits from network connectivity.
func ToDOT(net *dfn.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [fontsize=12];\n")
	buf.WriteString("\n")

	for _, f := range net.Fractures() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", fractureNode(f.ID()), fractureLabel(f, opts.Detailed))
	}
	for _, w := range net.System().Wells() {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=box, style=filled, fillcolor=lightgrey];\n",
			wellNode(w), wellLabel(w))
	}

	buf.WriteString("\n")
	for _, ix := range net.Intersections(dfn.KindFractureFracture) {
		fmt.Fprintf(&buf, "  %q -- %q;\n", fractureNode(ix.A), fractureNode(ix.B))
	}
	for _, ix := range net.Intersections(dfn.KindFractureWell) {
		w := net.System().Wells()[ix.B]
		fmt.Fprintf(&buf, "  %q -- %q [style=dashed];\n", fractureNode(ix.A), wellNode(w))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fractureNode(id int) string { return fmt.Sprintf("F%d", id) }

func fractureLabel(f *dfn.Fracture, detailed bool) string {
	if !detailed {
		return fractureNode(f.ID())
	}
	return fmt.Sprintf("F%d\nsize: %.3g\narea: %.3g", f.ID(), f.Size(), f.Area())
}

func wellNode(w *dfn.Well) string {
	if w.Name() != "" {
		return w.Name()
	}
	return fmt.Sprintf("W%d", w.ID())
}

func wellLabel(w *dfn.Well) string {
	return wellNode(w)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG, nil)
}

func renderFormat(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the graph scales to its
// container instead of keeping Graphviz's point-based size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
