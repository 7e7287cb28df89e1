// Package output - Terminal rendering
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/SailerAI/arco-pricing/core/sweep"
	"github.com/SailerAI/arco-pricing/core/types"
)

// Colors for terminal output
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// CLIFormatter renders results for a terminal
type CLIFormatter struct {
	noColor bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

func (f *CLIFormatter) color(c, text string) string {
	if f.noColor {
		return text
	}
	return c + text + reset
}

func (f *CLIFormatter) header(w io.Writer, title string) {
	fmt.Fprintln(w, f.color(bold, title))
	fmt.Fprintln(w, f.color(dim, strings.Repeat("─", len(title))))
}

// RenderSimulation renders a point-estimate result
func (f *CLIFormatter) RenderSimulation(w io.Writer, r *types.SimulationResult) error {
	cur := r.Currency

	f.header(w, "Funnel")
	fmt.Fprintf(w, "  Leads sent        %12.0f\n", r.TotalLeads)
	fmt.Fprintf(w, "  Replies           %12.1f\n", r.Counts.Replies)
	fmt.Fprintf(w, "  Qualified         %12.1f\n", r.Counts.Qualified)
	fmt.Fprintf(w, "  Booked meetings   %12.1f\n", r.Counts.Booked)
	fmt.Fprintln(w)

	f.header(w, "Cost composition")
	fmt.Fprintf(w, "  %-28s %12s %14s %8s\n", "Component", "Quantity", "Cost", "Share")
	for _, line := range r.Breakdown {
		qty := "-"
		if line.HasQuantity {
			qty = fmt.Sprintf("%.1f", line.Quantity)
		}
		fmt.Fprintf(w, "  %-28s %12s %14s %7.1f%%\n",
			line.Component.Label(), qty, cur.FormatMoney(line.Cost), line.Share)
	}
	fmt.Fprintln(w)

	if r.FloorApplied() {
		fmt.Fprintf(w, "  %s\n", f.color(yellow, fmt.Sprintf(
			"Minimum billing applied: calculated %s, payable %s",
			cur.FormatMoney(r.CalculatedCost), cur.FormatMoney(r.TotalCost))))
		fmt.Fprintln(w)
	}

	f.header(w, "Totals")
	fmt.Fprintf(w, "  Total cost        %s\n", f.color(green, cur.FormatMoney(r.TotalCost)))
	fmt.Fprintf(w, "  Cost per lead     %s\n", cur.FormatMoney(r.CostPerLead))
	fmt.Fprintf(w, "  Cost per meeting  %s\n", cur.FormatMoney(r.CostPerAcquisition))
	return nil
}

// RenderVolumeSweep renders the series as a volume-by-variation table
func (f *CLIFormatter) RenderVolumeSweep(w io.Writer, r *sweep.VolumeSweepResult) error {
	cur := r.Currency

	f.header(w, fmt.Sprintf("Volume sensitivity — %s", r.Dimension.Label()))

	fmt.Fprintf(w, "  %10s", "Volume")
	for _, s := range r.Series {
		label := s.Variation.Label
		if s.Variation.IsTarget {
			label = f.color(cyan, label)
		}
		fmt.Fprintf(w, " %16s", label)
	}
	fmt.Fprintln(w)

	for vi, volume := range r.Volumes {
		fmt.Fprintf(w, "  %10.0f", volume)
		for _, s := range r.Series {
			fmt.Fprintf(w, " %16s", cur.FormatMoney(s.Points[vi].TotalCost))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Current scenario: %.0f leads at %s\n",
		r.Target.Volume, cur.FormatMoney(r.Target.TotalCost))
	return nil
}

// RenderGridSweep renders the cost matrix plus insights
func (f *CLIFormatter) RenderGridSweep(w io.Writer, r *sweep.GridSweepResult) error {
	cur := r.Currency

	f.header(w, fmt.Sprintf("Sensitivity matrix — %s vs %s",
		r.RowDimension.Label(), r.ColDimension.Label()))

	f.renderMatrix(w, r, "Total cost", func(ri, ci int) string {
		return cur.FormatMoney(r.Cost[ri][ci])
	})
	fmt.Fprintln(w)
	f.renderMatrix(w, r, "Cost per meeting", func(ri, ci int) string {
		return cur.FormatMoney(r.CPA[ri][ci])
	})
	fmt.Fprintln(w)
	f.renderMatrix(w, r, "Booked meetings", func(ri, ci int) string {
		return fmt.Sprintf("%.0f", r.Booked[ri][ci])
	})
	fmt.Fprintln(w)

	ins := r.Insights
	f.header(w, "Insights")
	fmt.Fprintf(w, "  Lowest cost       %s at %s (%s vs target)\n",
		cur.FormatMoney(ins.MinCost), f.cellRates(r, ins.MinCostCell),
		cur.FormatMoney(ins.MinCost.Sub(r.TargetCost)))
	fmt.Fprintf(w, "  Highest cost      %s at %s (%s vs target)\n",
		cur.FormatMoney(ins.MaxCost), f.cellRates(r, ins.MaxCostCell),
		cur.FormatMoney(ins.MaxCost.Sub(r.TargetCost)))
	fmt.Fprintf(w, "  Most meetings     %.0f at %s (%+.1f vs target)\n",
		ins.MaxBooked, f.cellRates(r, ins.MaxBookedCell),
		ins.MaxBooked-r.TargetBooked)
	fmt.Fprintf(w, "  Target cell       %s (cost %s, %.1f meetings)\n",
		f.cellRates(r, sweep.GridCell{Row: r.TargetRow, Col: r.TargetCol}),
		cur.FormatMoney(r.TargetCost), r.TargetBooked)
	return nil
}

func (f *CLIFormatter) cellRates(r *sweep.GridSweepResult, cell sweep.GridCell) string {
	return fmt.Sprintf("%.0f%% / %.0f%%",
		r.RowRates[cell.Row]*100, r.ColRates[cell.Col]*100)
}

func (f *CLIFormatter) renderMatrix(w io.Writer, r *sweep.GridSweepResult, title string, value func(ri, ci int) string) {
	fmt.Fprintf(w, "  %s\n", f.color(bold, title))

	fmt.Fprintf(w, "  %8s", "")
	for _, colRate := range r.ColRates {
		fmt.Fprintf(w, " %12s", fmt.Sprintf("%.0f%%", colRate*100))
	}
	fmt.Fprintln(w)

	for ri, rowRate := range r.RowRates {
		label := fmt.Sprintf("%.0f%%", rowRate*100)
		if ri == r.TargetRow {
			label = f.color(cyan, label)
		}
		fmt.Fprintf(w, "  %8s", label)
		for ci := range r.ColRates {
			fmt.Fprintf(w, " %12s", value(ri, ci))
		}
		fmt.Fprintln(w)
	}
}
