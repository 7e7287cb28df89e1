// Package funnel models lead propagation through the conversion stages
// sent -> replied -> qualified -> booked.
package funnel

import "github.com/SailerAI/arco-pricing/core/types"

// Propagate runs a lead volume through the conversion rates and returns
// the expected count at each stage. Counts are expected values, not
// discrete events, so no rounding is applied and fractional results are
// intentional.
func Propagate(totalLeads float64, rates types.FunnelRates) types.FunnelCounts {
	replies := totalLeads * rates.Response
	qualified := replies * rates.Qualification

	return types.FunnelCounts{
		Replies:   replies,
		NoReplies: totalLeads - replies,
		Qualified: qualified,
		Booked:    qualified * rates.Booking,
	}
}
