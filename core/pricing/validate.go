// Package pricing - Table validation
package pricing

import (
	"sort"

	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/errors"
)

// Validate checks a pricing table for structural defects: a tier with
// min >= max, a negative min, or a negative unit price. Overlaps and gaps
// between tiers are accepted here; use ValidateStrict to reject them.
func Validate(table types.PricingTable) error {
	if len(table.Tiers) == 0 {
		return errors.Table("pricing table has no tiers")
	}
	for i, tier := range table.Tiers {
		if tier.Min < 0 {
			return errors.Tablef("tier %d: min must be non-negative, got %v", i, tier.Min)
		}
		if tier.Min >= tier.Max {
			return errors.Tablef("tier %d: min (%v) must be below max (%v)", i, tier.Min, tier.Max)
		}
		if tier.UnitPrice.IsNegative() {
			return errors.Tablef("tier %d: unit price must be non-negative, got %s", i, tier.UnitPrice)
		}
	}
	return nil
}

// ValidateStrict additionally requires that the tiers tile the quantity
// domain: sorted by min, each tier must start exactly where the previous
// one ends. Overlapping tiers double-count the shared range in Evaluate,
// which is almost never what a price schedule intends.
func ValidateStrict(table types.PricingTable) error {
	if err := Validate(table); err != nil {
		return err
	}

	tiers := make([]types.Tier, len(table.Tiers))
	copy(tiers, table.Tiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Min < tiers[j].Min
	})

	for i := 1; i < len(tiers); i++ {
		prev, cur := tiers[i-1], tiers[i]
		if cur.Min < prev.Max {
			return errors.Tablef("tiers overlap: [%v,%v) and [%v,%v)", prev.Min, prev.Max, cur.Min, cur.Max)
		}
		if cur.Min > prev.Max {
			return errors.Tablef("gap between tiers: [%v,%v) and [%v,%v)", prev.Min, prev.Max, cur.Min, cur.Max)
		}
	}
	return nil
}

// ValidateFlat checks a flat-rate table
func ValidateFlat(table types.FlatTable) error {
	if table.UnitPrice.IsNegative() {
		return errors.Tablef("unit price must be non-negative, got %s", table.UnitPrice)
	}
	return nil
}
