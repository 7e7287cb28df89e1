// Package pricing - Tiered price evaluation
// Implements marginal (bracket) billing: each tier charges its unit price
// for the portion of the quantity that falls inside its range, the way
// progressive tax brackets do.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/errors"
)

// Evaluate computes the bracket cost for a quantity against a table.
// Tiers are sorted ascending by Min first, so input order does not matter.
// Quantities are real-valued: the funnel carries expected counts, which
// are fractional.
func Evaluate(quantity float64, table types.PricingTable) (decimal.Decimal, error) {
	if quantity < 0 {
		return decimal.Zero, errors.Inputf("quantity must be non-negative, got %v", quantity)
	}
	if quantity == 0 {
		return decimal.Zero, nil
	}

	tiers := make([]types.Tier, len(table.Tiers))
	copy(tiers, table.Tiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Min < tiers[j].Min
	})

	// Each tier whose floor is below the quantity contributes the slice of
	// quantity between its floor and ceiling. Overlapping tiers contribute
	// for their full range each; Validate does not reject overlaps, so a
	// malformed table double-counts the shared range. ValidateStrict exists
	// for callers that want a tiling schedule enforced.
	total := decimal.Zero
	for _, tier := range tiers {
		if quantity <= tier.Min {
			continue
		}
		inTier := min(quantity, tier.Max) - tier.Min
		total = total.Add(decimal.NewFromFloat(inTier).Mul(tier.UnitPrice))
	}

	return total, nil
}

// EvaluateFlat computes the cost for a flat-rate table
func EvaluateFlat(quantity float64, table types.FlatTable) (decimal.Decimal, error) {
	if quantity < 0 {
		return decimal.Zero, errors.Inputf("quantity must be non-negative, got %v", quantity)
	}
	return decimal.NewFromFloat(quantity).Mul(table.UnitPrice), nil
}
