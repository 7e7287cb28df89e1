// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"github.com/SailerAI/arco-pricing/core/sweep"
	"github.com/SailerAI/arco-pricing/core/types"
)

// JSONFormatter emits indented JSON for machine consumers
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

func (f *JSONFormatter) render(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderSimulation renders a point-estimate result
func (f *JSONFormatter) RenderSimulation(w io.Writer, result *types.SimulationResult) error {
	return f.render(w, result)
}

// RenderVolumeSweep renders a volume sensitivity result
func (f *JSONFormatter) RenderVolumeSweep(w io.Writer, result *sweep.VolumeSweepResult) error {
	return f.render(w, result)
}

// RenderGridSweep renders a two-factor grid result
func (f *JSONFormatter) RenderGridSweep(w io.Writer, result *sweep.GridSweepResult) error {
	return f.render(w, result)
}
