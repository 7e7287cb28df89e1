// Package types - Simulation result records
package types

import "github.com/shopspring/decimal"

// Component identifies a cost-breakdown line
type Component string

const (
	ComponentNoReply   Component = "no_reply"
	ComponentReplies   Component = "replies"
	ComponentQualified Component = "qualified"
	ComponentBooked    Component = "booked"
	ComponentFloor     Component = "minimum_billing_adjustment"
)

// Label returns a human-readable name for the component
func (c Component) Label() string {
	switch c {
	case ComponentNoReply:
		return "No reply"
	case ComponentReplies:
		return "Replies"
	case ComponentQualified:
		return "Qualified leads"
	case ComponentBooked:
		return "Booked meetings"
	case ComponentFloor:
		return "Minimum billing adjustment"
	default:
		return string(c)
	}
}

// CostLine is one line of the cost-composition breakdown
type CostLine struct {
	// Component identifies the line
	Component Component `json:"component"`

	// Quantity is the stage event count; the floor-adjustment line has none
	Quantity float64 `json:"quantity"`

	// HasQuantity is false for quantity-less lines (the floor adjustment)
	HasQuantity bool `json:"has_quantity"`

	// Cost is the line amount
	Cost decimal.Decimal `json:"cost"`

	// Share is the line's percentage of the total cost
	Share float64 `json:"share"`
}

// SimulationResult is the read-only record produced by one simulation.
// A fresh record is created per call; nothing is cached or shared.
type SimulationResult struct {
	// TotalLeads echoes the input volume
	TotalLeads float64 `json:"total_leads"`

	// Counts are the propagated funnel stage counts
	Counts FunnelCounts `json:"counts"`

	// Per-stage costs
	CostNoReply   decimal.Decimal `json:"cost_no_reply"`
	CostReplies   decimal.Decimal `json:"cost_replies"`
	CostQualified decimal.Decimal `json:"cost_qualified"`
	CostBooked    decimal.Decimal `json:"cost_booked"`

	// CalculatedCost is the stage-cost sum before the minimum-billing floor
	CalculatedCost decimal.Decimal `json:"calculated_cost"`

	// TotalCost is the payable amount after the floor
	TotalCost decimal.Decimal `json:"total_cost"`

	// CostPerLead is TotalCost / TotalLeads, 0 when there are no leads
	CostPerLead decimal.Decimal `json:"cost_per_lead"`

	// CostPerAcquisition is TotalCost / Booked, 0 when nothing is booked
	CostPerAcquisition decimal.Decimal `json:"cost_per_acquisition"`

	// Currency is carried from the config
	Currency Currency `json:"currency"`

	// Breakdown is the ordered cost-composition table
	Breakdown []CostLine `json:"breakdown"`
}

// FloorApplied reports whether the minimum-billing floor raised the total
func (r *SimulationResult) FloorApplied() bool {
	return r.TotalCost.GreaterThan(r.CalculatedCost)
}

// FloorAdjustment returns the amount added by the floor
func (r *SimulationResult) FloorAdjustment() decimal.Decimal {
	return r.TotalCost.Sub(r.CalculatedCost)
}
