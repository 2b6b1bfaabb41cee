package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/fracnet/pkg/pipeline"
)

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
}

// writeArtifacts writes rendered artifacts to disk. With a single format the
// output path is used as-is (or derived from the input); with multiple
// formats each file gets the format as its extension.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("missing artifact for format %q", format)
		}

		path := base + "." + format
		if p.output != "" && len(p.formats) == 1 && filepath.Ext(p.output) != "" {
			path = p.output
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	if p.cacheHit {
		printDetail("all outputs served from cache")
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.vtk, .svg, etc.), it strips that
// extension so multiple formats do not stack suffixes.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
