// Package types defines the shared data model for the pricing engine.
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol for the currency
func (c Currency) Symbol() string {
	switch c {
	case CurrencyBRL:
		return "R$"
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	default:
		return string(c)
	}
}

// FormatMoney renders an amount with the currency symbol
func (c Currency) FormatMoney(amount decimal.Decimal) string {
	return c.Symbol() + " " + amount.StringFixed(2)
}

// Tier is one bracket of a tiered price schedule. Units falling between
// Min and Max are charged UnitPrice each.
type Tier struct {
	// Min is the bracket floor (inclusive of the excess above it)
	Min float64 `json:"min"`

	// Max is the bracket ceiling; quantity above it spills into higher tiers
	Max float64 `json:"max"`

	// UnitPrice is the marginal price per unit inside this bracket
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Width returns the bracket size
func (t Tier) Width() float64 {
	return t.Max - t.Min
}

// PricingTable is an ordered set of tiers. Tiers are re-sorted ascending by
// Min before every evaluation, so callers may supply them in any order.
type PricingTable struct {
	Tiers []Tier `json:"tiers"`
}

// FlatTable charges a single unit price regardless of quantity
type FlatTable struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// FunnelRates holds the stage conversion multipliers, each expected in [0,1]
type FunnelRates struct {
	// Response is the fraction of sent leads that reply
	Response float64 `json:"response"`

	// Qualification is the fraction of replies that qualify
	Qualification float64 `json:"qualification"`

	// Booking is the fraction of qualified leads that book a meeting
	Booking float64 `json:"booking"`
}

// StageTables holds the price schedule for each charged funnel stage
type StageTables struct {
	// NoReply is charged per non-responding lead
	NoReply FlatTable `json:"no_reply"`

	// Leads is the bracket schedule for responding leads
	Leads PricingTable `json:"leads"`

	// Qualified is the bracket schedule for qualified leads
	Qualified PricingTable `json:"qualified"`

	// Booked is the bracket schedule for booked meetings
	Booked PricingTable `json:"booked"`
}

// SimulationConfig is the self-contained input bundle for one simulation.
// The engine never mutates it; sweeps derive per-cell copies.
type SimulationConfig struct {
	// TotalLeads is the volume fed into the funnel
	TotalLeads float64 `json:"total_leads"`

	// Rates are the stage conversion multipliers
	Rates FunnelRates `json:"rates"`

	// Tables are the per-stage price schedules
	Tables StageTables `json:"tables"`

	// MinimumBilling is the contractual floor applied to the calculated cost
	MinimumBilling decimal.Decimal `json:"minimum_billing"`

	// Currency is presentation metadata carried through to results
	Currency Currency `json:"currency"`
}

// FunnelCounts holds the expected event count at each funnel stage.
// Counts are expected values and may be fractional.
type FunnelCounts struct {
	NoReplies float64 `json:"no_replies"`
	Replies   float64 `json:"replies"`
	Qualified float64 `json:"qualified"`
	Booked    float64 `json:"booked"`
}
