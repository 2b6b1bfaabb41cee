package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fracnet/pkg/pipeline"
)

// runCommand creates the run command for the full pipeline.
func (c *CLI) runCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{
		Wells:  true,
		Traces: true,
	}

	cmd := &cobra.Command{
		Use:   "run [scene file]",
		Short: "Build a fracture network from a scene file and export it",
		Long: `Build a fracture network from a scene file and export it.

The run command reads a scene definition (TOML or JSON), assembles the
bounded system, wells, and fracture population, computes all intersections,
and writes the requested output formats next to the scene file.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ScenePath = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runPipeline(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "override the scene's generation seed")

	// Mesh flags
	cmd.Flags().BoolVar(&opts.ClipToSystem, "clip", opts.ClipToSystem, "clip fractures to the bounding system")
	cmd.Flags().BoolVar(&opts.Wells, "wells", opts.Wells, "include well trajectories")
	cmd.Flags().BoolVar(&opts.Traces, "traces", opts.Traces, "include intersection traces")

	// Render flags
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", opts.Detailed, "detailed node labels in graph outputs")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): vtk (default), obj, json, dot, svg, png (comma-separated)")

	return cmd
}

// runPipeline executes the full pipeline and writes the artifacts.
func (c *CLI) runPipeline(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	track := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building %s...", opts.ScenePath))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Pipeline failed")
		return err
	}
	spinner.Stop()
	track.done(fmt.Sprintf("Computed %d intersections",
		result.Stats.FractureFracture+result.Stats.FractureWell))

	printNetworkLine(result.Stats.Fractures, result.Stats.Wells,
		result.Stats.FractureFracture+result.Stats.FractureWell,
		result.CacheInfo.StatsHit)

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.ScenePath,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}
