// Package simulate is the cost engine's single-point entry: it combines the
// funnel model, the per-stage price tables and the minimum-billing floor
// into one SimulationResult.
package simulate

import (
	"github.com/shopspring/decimal"

	"github.com/SailerAI/arco-pricing/core/funnel"
	"github.com/SailerAI/arco-pricing/core/pricing"
	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/errors"
)

// ValidateConfig checks a simulation config at the engine boundary.
// Rates outside [0,1] are rejected, not clamped: the engine refuses to
// produce out-of-range funnel counts silently.
func ValidateConfig(cfg types.SimulationConfig) error {
	if cfg.TotalLeads < 0 {
		return errors.Inputf("total leads must be non-negative, got %v", cfg.TotalLeads)
	}
	if cfg.MinimumBilling.IsNegative() {
		return errors.Inputf("minimum billing must be non-negative, got %s", cfg.MinimumBilling)
	}
	if err := validateRate("response", cfg.Rates.Response); err != nil {
		return err
	}
	if err := validateRate("qualification", cfg.Rates.Qualification); err != nil {
		return err
	}
	if err := validateRate("booking", cfg.Rates.Booking); err != nil {
		return err
	}
	if err := pricing.ValidateFlat(cfg.Tables.NoReply); err != nil {
		return err
	}
	for _, st := range []struct {
		name  string
		table types.PricingTable
	}{
		{"leads", cfg.Tables.Leads},
		{"qualified", cfg.Tables.Qualified},
		{"booked", cfg.Tables.Booked},
	} {
		if err := pricing.Validate(st.table); err != nil {
			if e, ok := err.(*errors.Error); ok {
				return e.WithContext("table", st.name)
			}
			return err
		}
	}
	return nil
}

func validateRate(name string, rate float64) error {
	if rate < 0 || rate > 1 {
		return errors.Ratef("%s rate must be within [0,1], got %v", name, rate)
	}
	return nil
}

// Simulate runs one point estimate. It is pure and deterministic: the
// config is never mutated and every call allocates a fresh result.
func Simulate(cfg types.SimulationConfig) (*types.SimulationResult, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	counts := funnel.Propagate(cfg.TotalLeads, cfg.Rates)

	costNoReply, err := pricing.EvaluateFlat(counts.NoReplies, cfg.Tables.NoReply)
	if err != nil {
		return nil, err
	}
	costReplies, err := pricing.Evaluate(counts.Replies, cfg.Tables.Leads)
	if err != nil {
		return nil, err
	}
	costQualified, err := pricing.Evaluate(counts.Qualified, cfg.Tables.Qualified)
	if err != nil {
		return nil, err
	}
	costBooked, err := pricing.Evaluate(counts.Booked, cfg.Tables.Booked)
	if err != nil {
		return nil, err
	}

	calculated := costNoReply.Add(costReplies).Add(costQualified).Add(costBooked)

	// The floor raises the payable amount but both values stay exposed so
	// callers can show that the minimum was applied and by how much.
	total := calculated
	if cfg.MinimumBilling.GreaterThan(total) {
		total = cfg.MinimumBilling
	}

	result := &types.SimulationResult{
		TotalLeads:         cfg.TotalLeads,
		Counts:             counts,
		CostNoReply:        costNoReply,
		CostReplies:        costReplies,
		CostQualified:      costQualified,
		CostBooked:         costBooked,
		CalculatedCost:     calculated,
		TotalCost:          total,
		CostPerLead:        safeDivide(total, cfg.TotalLeads),
		CostPerAcquisition: safeDivide(total, counts.Booked),
		Currency:           cfg.Currency,
	}
	result.Breakdown = buildBreakdown(result)

	return result, nil
}

// safeDivide returns amount/denominator, defined as zero when the
// denominator is zero. Not an error by contract.
func safeDivide(amount decimal.Decimal, denominator float64) decimal.Decimal {
	if denominator <= 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromFloat(denominator))
}

func buildBreakdown(r *types.SimulationResult) []types.CostLine {
	lines := []types.CostLine{
		{Component: types.ComponentNoReply, Quantity: r.Counts.NoReplies, HasQuantity: true, Cost: r.CostNoReply},
		{Component: types.ComponentReplies, Quantity: r.Counts.Replies, HasQuantity: true, Cost: r.CostReplies},
		{Component: types.ComponentQualified, Quantity: r.Counts.Qualified, HasQuantity: true, Cost: r.CostQualified},
		{Component: types.ComponentBooked, Quantity: r.Counts.Booked, HasQuantity: true, Cost: r.CostBooked},
	}
	if r.FloorApplied() {
		lines = append(lines, types.CostLine{
			Component: types.ComponentFloor,
			Cost:      r.FloorAdjustment(),
		})
	}

	if r.TotalCost.IsPositive() {
		for i := range lines {
			share, _ := lines[i].Cost.Div(r.TotalCost).Mul(decimal.NewFromInt(100)).Float64()
			lines[i].Share = share
		}
	}
	return lines
}
