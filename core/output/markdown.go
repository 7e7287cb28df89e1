// Package output - Markdown rendering
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/SailerAI/arco-pricing/core/sweep"
	"github.com/SailerAI/arco-pricing/core/types"
)

// MarkdownFormatter emits a markdown report
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// RenderSimulation renders a point-estimate result
func (f *MarkdownFormatter) RenderSimulation(w io.Writer, r *types.SimulationResult) error {
	cur := r.Currency

	fmt.Fprintln(w, "## Simulation result")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Stage | Count |")
	fmt.Fprintln(w, "|---|---:|")
	fmt.Fprintf(w, "| Leads sent | %.0f |\n", r.TotalLeads)
	fmt.Fprintf(w, "| Replies | %.1f |\n", r.Counts.Replies)
	fmt.Fprintf(w, "| Qualified | %.1f |\n", r.Counts.Qualified)
	fmt.Fprintf(w, "| Booked | %.1f |\n", r.Counts.Booked)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "### Cost composition")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Component | Quantity | Cost | Share |")
	fmt.Fprintln(w, "|---|---:|---:|---:|")
	for _, line := range r.Breakdown {
		qty := "-"
		if line.HasQuantity {
			qty = fmt.Sprintf("%.1f", line.Quantity)
		}
		fmt.Fprintf(w, "| %s | %s | %s | %.1f%% |\n",
			line.Component.Label(), qty, cur.FormatMoney(line.Cost), line.Share)
	}
	fmt.Fprintln(w)

	if r.FloorApplied() {
		fmt.Fprintf(w, "> Minimum billing applied: calculated %s, payable %s.\n\n",
			cur.FormatMoney(r.CalculatedCost), cur.FormatMoney(r.TotalCost))
	}

	fmt.Fprintf(w, "**Total cost:** %s — CPL %s — CPA %s\n",
		cur.FormatMoney(r.TotalCost), cur.FormatMoney(r.CostPerLead),
		cur.FormatMoney(r.CostPerAcquisition))
	return nil
}

// RenderVolumeSweep renders a volume sensitivity result
func (f *MarkdownFormatter) RenderVolumeSweep(w io.Writer, r *sweep.VolumeSweepResult) error {
	cur := r.Currency

	fmt.Fprintf(w, "## Volume sensitivity — %s\n\n", r.Dimension.Label())

	headers := make([]string, 0, len(r.Series)+1)
	headers = append(headers, "Volume")
	for _, s := range r.Series {
		headers = append(headers, s.Variation.Label)
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(w, "|%s\n", strings.Repeat("---:|", len(headers)))

	for vi, volume := range r.Volumes {
		row := []string{fmt.Sprintf("%.0f", volume)}
		for _, s := range r.Series {
			row = append(row, cur.FormatMoney(s.Points[vi].TotalCost))
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
	}

	fmt.Fprintf(w, "\nCurrent scenario: %.0f leads at %s.\n",
		r.Target.Volume, cur.FormatMoney(r.Target.TotalCost))
	return nil
}

// RenderGridSweep renders a two-factor grid result
func (f *MarkdownFormatter) RenderGridSweep(w io.Writer, r *sweep.GridSweepResult) error {
	cur := r.Currency

	fmt.Fprintf(w, "## Sensitivity matrix — %s vs %s\n\n",
		r.RowDimension.Label(), r.ColDimension.Label())

	f.renderMatrix(w, r, "Total cost", func(ri, ci int) string {
		return cur.FormatMoney(r.Cost[ri][ci])
	})
	f.renderMatrix(w, r, "Cost per meeting", func(ri, ci int) string {
		return cur.FormatMoney(r.CPA[ri][ci])
	})
	f.renderMatrix(w, r, "Booked meetings", func(ri, ci int) string {
		return fmt.Sprintf("%.1f", r.Booked[ri][ci])
	})

	ins := r.Insights
	fmt.Fprintln(w, "### Insights")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- Lowest cost: %s at %s (%s vs target)\n",
		cur.FormatMoney(ins.MinCost), f.cellRates(r, ins.MinCostCell),
		cur.FormatMoney(ins.MinCost.Sub(r.TargetCost)))
	fmt.Fprintf(w, "- Highest cost: %s at %s (%s vs target)\n",
		cur.FormatMoney(ins.MaxCost), f.cellRates(r, ins.MaxCostCell),
		cur.FormatMoney(ins.MaxCost.Sub(r.TargetCost)))
	fmt.Fprintf(w, "- Most meetings: %.0f at %s (%+.1f vs target)\n",
		ins.MaxBooked, f.cellRates(r, ins.MaxBookedCell),
		ins.MaxBooked-r.TargetBooked)
	fmt.Fprintf(w, "- Target cell: %s (cost %s, %.1f meetings)\n",
		f.cellRates(r, sweep.GridCell{Row: r.TargetRow, Col: r.TargetCol}),
		cur.FormatMoney(r.TargetCost), r.TargetBooked)
	return nil
}

func (f *MarkdownFormatter) cellRates(r *sweep.GridSweepResult, cell sweep.GridCell) string {
	return fmt.Sprintf("%.0f%% / %.0f%%",
		r.RowRates[cell.Row]*100, r.ColRates[cell.Col]*100)
}

func (f *MarkdownFormatter) renderMatrix(w io.Writer, r *sweep.GridSweepResult, title string, value func(ri, ci int) string) {
	fmt.Fprintf(w, "### %s\n\n", title)

	headers := make([]string, 0, len(r.ColRates)+1)
	headers = append(headers, "")
	for _, colRate := range r.ColRates {
		headers = append(headers, fmt.Sprintf("%.0f%%", colRate*100))
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(w, "|%s\n", strings.Repeat("---:|", len(headers)))

	for ri, rowRate := range r.RowRates {
		row := []string{fmt.Sprintf("**%.0f%%**", rowRate*100)}
		for ci := range r.ColRates {
			row = append(row, value(ri, ci))
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
	}
	fmt.Fprintln(w)
}
