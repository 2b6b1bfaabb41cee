package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fracnet/pkg/pipeline"
)

// statsCommand creates the stats command for inspecting a network.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		noCache     bool
		interactive bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "stats [scene file]",
		Short: "Compute and display network statistics",
		Long: `Compute and display network statistics.

The stats command builds the network described by a scene file, computes
all intersections, and prints fracture counts, intersection counts, the
volumetric density (P32), and the connectivity clusters.

With --interactive the fracture population is shown in a browsable table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ScenePath = args[0]
			opts.Formats = []string{pipeline.FormatJSON}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			opts.Logger = c.Logger

			spinner := newSpinnerWithContext(cmd.Context(), "Computing network...")
			spinner.Start()
			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				spinner.StopWithError("Computation failed")
				return err
			}
			spinner.Stop()

			if interactive {
				model := newNetworkModel(result)
				_, err := tea.NewProgram(model).Run()
				return err
			}

			printStatsReport(result, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "override the scene's generation seed")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the fracture population")

	return cmd
}

// printStatsReport prints the computed statistics as labeled values.
func printStatsReport(result *pipeline.Result, scenePath string) {
	printNewline()
	fmt.Println(StyleTitle.Render("Network statistics"))
	printNewline()
	printKeyValue("fractures", fmt.Sprintf("%d", result.Stats.Fractures))
	printKeyValue("wells", fmt.Sprintf("%d", result.Stats.Wells))
	printKeyValue("fracture-fracture", fmt.Sprintf("%d", result.Stats.FractureFracture))
	printKeyValue("fracture-well", fmt.Sprintf("%d", result.Stats.FractureWell))
	printKeyValue("density (P32)", fmt.Sprintf("%.6g", result.Stats.Density))
	printKeyValue("clusters", fmt.Sprintf("%d", result.Stats.Clusters))
	printNetworkLine(result.Stats.Fractures, result.Stats.Wells,
		result.Stats.FractureFracture+result.Stats.FractureWell,
		result.CacheInfo.StatsHit)
	printNewline()
	printNextStep("Export the mesh", "fracnet run "+scenePath+" --format vtk")
}
