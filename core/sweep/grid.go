// Package sweep - Two-factor grid sweep
package sweep

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/SailerAI/arco-pricing/core/simulate"
	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/errors"
	"github.com/SailerAI/arco-pricing/internal/logging"
)

// GridCell addresses one (row, col) position of the grid
type GridCell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GridInsights summarizes the grid extremes for overlay metrics
type GridInsights struct {
	// MinCost is the cheapest cell
	MinCost     decimal.Decimal `json:"min_cost"`
	MinCostCell GridCell        `json:"min_cost_cell"`

	// MaxCost is the most expensive cell
	MaxCost     decimal.Decimal `json:"max_cost"`
	MaxCostCell GridCell        `json:"max_cost_cell"`

	// MaxBooked is the highest booked-meeting count
	MaxBooked     float64  `json:"max_booked"`
	MaxBookedCell GridCell `json:"max_booked_cell"`
}

// GridSweepResult holds the three parallel matrices of a two-factor sweep.
// Row and column order follows the ascending axis values.
type GridSweepResult struct {
	// RowDimension and ColDimension identify the swept rates
	RowDimension RateDimension `json:"row_dimension"`
	ColDimension RateDimension `json:"col_dimension"`

	// RowRates and ColRates are the ascending axis values
	RowRates []float64 `json:"row_rates"`
	ColRates []float64 `json:"col_rates"`

	// Cost is the total cost per cell
	Cost [][]decimal.Decimal `json:"cost"`

	// CPA is the cost per acquisition per cell, zero when nothing books
	CPA [][]decimal.Decimal `json:"cpa"`

	// Booked is the booked-meeting count per cell
	Booked [][]float64 `json:"booked"`

	// TargetRow and TargetCol locate the base rates by nearest-value match
	TargetRow int `json:"target_row"`
	TargetCol int `json:"target_col"`

	// TargetCost is the base scenario's total for delta reporting
	TargetCost decimal.Decimal `json:"target_cost"`

	// TargetBooked is the base scenario's booked count for delta reporting
	TargetBooked float64 `json:"target_booked"`

	// Insights are the grid extremes
	Insights GridInsights `json:"insights"`

	// Currency is carried from the config
	Currency types.Currency `json:"currency"`
}

// SweepGrid evaluates the simulator once per (row rate, col rate) cell at
// the config's fixed lead volume. Rows run in parallel; cells within a row
// are filled in ascending column order.
func SweepGrid(cfg types.SimulationConfig, rowDim, colDim RateDimension, rowAxis, colAxis RateAxis) (*GridSweepResult, error) {
	if err := simulate.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if rowDim == colDim {
		return nil, errors.Inputf("grid dimensions must differ, got %q twice", rowDim)
	}
	if err := rowAxis.validate(); err != nil {
		return nil, err
	}
	if err := colAxis.validate(); err != nil {
		return nil, err
	}

	rowTarget, err := rateOf(cfg.Rates, rowDim)
	if err != nil {
		return nil, err
	}
	colTarget, err := rateOf(cfg.Rates, colDim)
	if err != nil {
		return nil, err
	}

	targetResult, err := simulate.Simulate(cfg)
	if err != nil {
		return nil, err
	}

	rowRates := rowAxis.Values()
	colRates := colAxis.Values()

	result := &GridSweepResult{
		RowDimension: rowDim,
		ColDimension: colDim,
		RowRates:     rowRates,
		ColRates:     colRates,
		Cost:         make([][]decimal.Decimal, len(rowRates)),
		CPA:          make([][]decimal.Decimal, len(rowRates)),
		Booked:       make([][]float64, len(rowRates)),
		TargetRow:    nearestIndex(rowRates, rowTarget),
		TargetCol:    nearestIndex(colRates, colTarget),
		TargetCost:   targetResult.TotalCost,
		TargetBooked: targetResult.Counts.Booked,
		Currency:     cfg.Currency,
	}

	logging.Debug("running grid sweep",
		zap.String("rows", string(rowDim)),
		zap.String("cols", string(colDim)),
		zap.Int("cells", len(rowRates)*len(colRates)))

	var firstErr error
	var errOnce sync.Once
	forEach(len(rowRates), func(ri int) {
		costRow := make([]decimal.Decimal, len(colRates))
		cpaRow := make([]decimal.Decimal, len(colRates))
		bookedRow := make([]float64, len(colRates))

		for ci, colRate := range colRates {
			cell := cfg
			cell.Rates = withRate(withRate(cfg.Rates, rowDim, rowRates[ri]), colDim, colRate)

			r, err := simulate.Simulate(cell)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			costRow[ci] = r.TotalCost
			cpaRow[ci] = r.CostPerAcquisition
			bookedRow[ci] = r.Counts.Booked
		}

		result.Cost[ri] = costRow
		result.CPA[ri] = cpaRow
		result.Booked[ri] = bookedRow
	})
	if firstErr != nil {
		return nil, firstErr
	}

	result.Insights = collectInsights(result)
	return result, nil
}

func collectInsights(g *GridSweepResult) GridInsights {
	ins := GridInsights{}
	first := true
	for ri := range g.Cost {
		for ci := range g.Cost[ri] {
			cost := g.Cost[ri][ci]
			booked := g.Booked[ri][ci]
			cell := GridCell{Row: ri, Col: ci}

			if first {
				ins.MinCost, ins.MinCostCell = cost, cell
				ins.MaxCost, ins.MaxCostCell = cost, cell
				ins.MaxBooked, ins.MaxBookedCell = booked, cell
				first = false
				continue
			}
			if cost.LessThan(ins.MinCost) {
				ins.MinCost, ins.MinCostCell = cost, cell
			}
			if cost.GreaterThan(ins.MaxCost) {
				ins.MaxCost, ins.MaxCostCell = cost, cell
			}
			if booked > ins.MaxBooked {
				ins.MaxBooked, ins.MaxBookedCell = booked, cell
			}
		}
	}
	return ins
}
