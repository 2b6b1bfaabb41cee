package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fracnet/pkg/buildinfo"
	"github.com/matzehuels/fracnet/pkg/cache"
	"github.com/matzehuels/fracnet/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "fracnet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "fracnet",
		Short:        "Fracnet models discrete fracture networks",
		Long:         `Fracnet is a CLI tool for building discrete fracture networks inside a bounded rock volume, computing their intersections, density, and connectivity, and exporting them for 3D viewers.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/fracnet/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatVTK}
	}
	return strings.Split(s, ",")
}
