// Package output renders simulation and sweep results.
// This package produces human and machine-readable outputs; it never
// recomputes anything, it only formats what the engine returned.
package output

import (
	"io"

	"github.com/SailerAI/arco-pricing/core/sweep"
	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderSimulation renders a point-estimate result
	RenderSimulation(w io.Writer, result *types.SimulationResult) error

	// RenderVolumeSweep renders a volume sensitivity result
	RenderVolumeSweep(w io.Writer, result *sweep.VolumeSweepResult) error

	// RenderGridSweep renders a two-factor grid result
	RenderGridSweep(w io.Writer, result *sweep.GridSweepResult) error
}

// New returns the formatter for a format name
func New(format Format, noColor bool) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{noColor: noColor}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeConfig, "unknown output format %q", format)
	}
}
