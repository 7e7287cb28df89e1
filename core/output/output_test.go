// Package output - Rendering tests
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/SailerAI/arco-pricing/core/pricing"
	"github.com/SailerAI/arco-pricing/core/simulate"
	"github.com/SailerAI/arco-pricing/core/sweep"
)

func TestNew(t *testing.T) {
	for _, format := range []Format{FormatCLI, FormatJSON, FormatMarkdown} {
		f, err := New(format, true)
		if err != nil {
			t.Fatalf("New(%s) error = %v", format, err)
		}
		if f.Format() != format {
			t.Errorf("Format() = %s, want %s", f.Format(), format)
		}
	}

	if _, err := New("yaml", true); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRenderSimulation(t *testing.T) {
	result, err := simulate.Simulate(pricing.ReferenceConfig())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	t.Run("cli", func(t *testing.T) {
		var buf bytes.Buffer
		f, _ := New(FormatCLI, true)
		if err := f.RenderSimulation(&buf, result); err != nil {
			t.Fatalf("RenderSimulation() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{"Funnel", "Cost composition", "Total cost", "R$"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("json is valid and carries the totals", func(t *testing.T) {
		var buf bytes.Buffer
		f, _ := New(FormatJSON, true)
		if err := f.RenderSimulation(&buf, result); err != nil {
			t.Fatalf("RenderSimulation() error = %v", err)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if _, ok := decoded["total_cost"]; !ok {
			t.Error("JSON output missing total_cost")
		}
		if _, ok := decoded["breakdown"]; !ok {
			t.Error("JSON output missing breakdown")
		}
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		f, _ := New(FormatMarkdown, true)
		if err := f.RenderSimulation(&buf, result); err != nil {
			t.Fatalf("RenderSimulation() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "| Component | Quantity | Cost | Share |") {
			t.Errorf("markdown missing composition table:\n%s", out)
		}
	})
}

func TestRenderSweeps(t *testing.T) {
	cfg := pricing.ReferenceConfig()

	volume, err := sweep.SweepVolume(cfg, sweep.DimResponse,
		sweep.DefaultVariation(sweep.DimResponse), sweep.VolumeAxis{Max: 300, Step: 100})
	if err != nil {
		t.Fatalf("SweepVolume() error = %v", err)
	}
	grid, err := sweep.SweepGrid(cfg, sweep.DimQualification, sweep.DimBooking,
		sweep.DefaultGridAxis(sweep.DimQualification), sweep.DefaultGridAxis(sweep.DimBooking))
	if err != nil {
		t.Fatalf("SweepGrid() error = %v", err)
	}

	for _, format := range []Format{FormatCLI, FormatJSON, FormatMarkdown} {
		t.Run(string(format), func(t *testing.T) {
			f, _ := New(format, true)

			var buf bytes.Buffer
			if err := f.RenderVolumeSweep(&buf, volume); err != nil {
				t.Fatalf("RenderVolumeSweep() error = %v", err)
			}
			if buf.Len() == 0 {
				t.Error("empty volume sweep output")
			}

			buf.Reset()
			if err := f.RenderGridSweep(&buf, grid); err != nil {
				t.Fatalf("RenderGridSweep() error = %v", err)
			}
			if buf.Len() == 0 {
				t.Error("empty grid sweep output")
			}
		})
	}
}
