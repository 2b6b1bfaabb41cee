package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fracnet/pkg/generate"
	"github.com/matzehuels/fracnet/pkg/geom"
	"github.com/matzehuels/fracnet/pkg/scene"
)

// generateCommand creates the generate command for writing stochastic scenes.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		name   string
		output string
		lx     float64
		ly     float64
		lz     float64
	)
	gen := generate.Options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a stochastic scene file",
		Long: `Write a stochastic scene file.

The generate command creates a scene definition with a generation block:
fracture centers are sampled uniformly in the box, sizes from a bounded
power law, and orientations from a Fisher distribution around the mean
pole. The same scene file always produces the same population, so the
file is the reproducible description of the network.

The extension of --output selects the encoding (.toml or .json).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gen.ValidateAndSetDefaults(); err != nil {
				return err
			}

			sc := &scene.Scene{
				Name: name,
				System: scene.SystemDef{
					Center: geom.V(lx/2, ly/2, lz/2),
					LX:     lx,
					LY:     ly,
					LZ:     lz,
				},
				Generate: &gen,
			}
			if err := sc.Validate(); err != nil {
				return err
			}

			if err := scene.WriteSceneFile(sc, output); err != nil {
				return fmt.Errorf("write scene: %w", err)
			}

			printSuccess("Wrote %s", output)
			printDetail("%d fractures, seed %d", gen.Count, gen.Seed)
			printNextStep("Build the network", "fracnet run "+output)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "generated", "scene name")
	cmd.Flags().StringVarP(&output, "output", "o", "scene.toml", "output scene file (.toml or .json)")
	cmd.Flags().Float64Var(&lx, "lx", 10, "box extent along x")
	cmd.Flags().Float64Var(&ly, "ly", 10, "box extent along y")
	cmd.Flags().Float64Var(&lz, "lz", 10, "box extent along z")
	cmd.Flags().IntVarP(&gen.Count, "count", "n", 100, "number of fractures")
	cmd.Flags().Uint64Var(&gen.Seed, "seed", generate.DefaultSeed, "random seed")
	cmd.Flags().Float64Var(&gen.SizeMin, "size-min", 1, "minimum fracture size")
	cmd.Flags().Float64Var(&gen.SizeMax, "size-max", 4, "maximum fracture size")
	cmd.Flags().Float64Var(&gen.SizeExponent, "size-exp", generate.DefaultSizeExponent, "power-law size exponent")
	cmd.Flags().Float64Var(&gen.MeanDip, "dip", 0, "mean dip angle in degrees")
	cmd.Flags().Float64Var(&gen.MeanDipDir, "dip-dir", 0, "mean dip direction in degrees")
	cmd.Flags().Float64Var(&gen.FisherKappa, "kappa", 0, "Fisher concentration (0 = uniform orientations)")

	return cmd
}
