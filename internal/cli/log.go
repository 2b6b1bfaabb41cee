// Package cli implements the fracnet command-line interface.
//
// This package provides commands for building fracture networks from scene
// files, computing their statistics, and exporting them for 3D viewers. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - run: Build a network from a scene file and export it
//   - stats: Compute and display network statistics
//   - generate: Write a stochastic scene file
//   - cache: Manage the pipeline cache
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration. It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as
// start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Computed 42 intersections (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
