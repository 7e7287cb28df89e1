// Package pricing - Reference price schedules
// These are the documented defaults used for testing and as the seed for
// generated scenario files. Production callers supply their own tables.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/SailerAI/arco-pricing/core/types"
)

// The open-ended top tier carries an explicit high ceiling rather than an
// unlimited sentinel, matching the reference schedules.
const openEndedMax = 99999

func price(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// DefaultNoReply returns the reference flat rate per non-responding lead
func DefaultNoReply() types.FlatTable {
	return types.FlatTable{UnitPrice: price(0.20)}
}

// DefaultLeads returns the reference schedule per responding lead
func DefaultLeads() types.PricingTable {
	return types.PricingTable{Tiers: []types.Tier{
		{Min: 0, Max: 500, UnitPrice: price(5.00)},
		{Min: 500, Max: 1500, UnitPrice: price(3.80)},
		{Min: 1500, Max: 2000, UnitPrice: price(3.00)},
		{Min: 2000, Max: 3000, UnitPrice: price(2.40)},
		{Min: 3000, Max: openEndedMax, UnitPrice: price(2.00)},
	}}
}

// DefaultQualified returns the reference schedule per qualified lead
func DefaultQualified() types.PricingTable {
	return types.PricingTable{Tiers: []types.Tier{
		{Min: 0, Max: 50, UnitPrice: price(20.00)},
		{Min: 50, Max: 100, UnitPrice: price(15.00)},
		{Min: 100, Max: 150, UnitPrice: price(10.00)},
		{Min: 150, Max: openEndedMax, UnitPrice: price(5.00)},
	}}
}

// DefaultBooked returns the reference schedule per booked meeting
func DefaultBooked() types.PricingTable {
	return types.PricingTable{Tiers: []types.Tier{
		{Min: 0, Max: 20, UnitPrice: price(100.00)},
		{Min: 20, Max: 50, UnitPrice: price(80.00)},
		{Min: 50, Max: 100, UnitPrice: price(60.00)},
		{Min: 100, Max: openEndedMax, UnitPrice: price(50.00)},
	}}
}

// DefaultTables returns all reference stage schedules
func DefaultTables() types.StageTables {
	return types.StageTables{
		NoReply:   DefaultNoReply(),
		Leads:     DefaultLeads(),
		Qualified: DefaultQualified(),
		Booked:    DefaultBooked(),
	}
}

// ReferenceConfig returns the reference target scenario: 2500 leads with
// 15% response, 25% qualification and 33% booking, no minimum billing.
func ReferenceConfig() types.SimulationConfig {
	return types.SimulationConfig{
		TotalLeads: 2500,
		Rates: types.FunnelRates{
			Response:      0.15,
			Qualification: 0.25,
			Booking:       0.33,
		},
		Tables:         DefaultTables(),
		MinimumBilling: decimal.Zero,
		Currency:       types.CurrencyBRL,
	}
}
