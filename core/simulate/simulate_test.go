// Package simulate - Cost simulator tests
package simulate

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/SailerAI/arco-pricing/core/pricing"
	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/errors"
)

func assertMoney(t *testing.T, label string, got decimal.Decimal, want float64) {
	t.Helper()
	diff := got.Sub(decimal.NewFromFloat(want)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(1e-6)) {
		t.Fatalf("%s = %s, want %v", label, got, want)
	}
}

// flatConfig yields a calculated cost of exactly totalLeads (1.00 per
// non-responding lead, zero response rate).
func flatConfig(totalLeads float64) types.SimulationConfig {
	return types.SimulationConfig{
		TotalLeads: totalLeads,
		Rates:      types.FunnelRates{},
		Tables: types.StageTables{
			NoReply:   types.FlatTable{UnitPrice: decimal.NewFromInt(1)},
			Leads:     pricing.DefaultLeads(),
			Qualified: pricing.DefaultQualified(),
			Booked:    pricing.DefaultBooked(),
		},
		Currency: types.CurrencyBRL,
	}
}

func TestSimulateReferenceScenario(t *testing.T) {
	result, err := Simulate(pricing.ReferenceConfig())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	// Funnel: 2500 leads at 15% / 25% / 33%
	if result.Counts.Replies != 375.0 {
		t.Errorf("Replies = %v, want 375", result.Counts.Replies)
	}
	if result.Counts.Qualified != 93.75 {
		t.Errorf("Qualified = %v, want 93.75", result.Counts.Qualified)
	}

	// Stage costs against the reference schedules:
	//   no reply:  2125 * 0.20                       = 425.00
	//   replies:   375 * 5.00                        = 1875.00
	//   qualified: 50*20.00 + 43.75*15.00            = 1656.25
	//   booked:    20*100.00 + 10.9375*80.00         = 2875.00
	assertMoney(t, "CostNoReply", result.CostNoReply, 425.00)
	assertMoney(t, "CostReplies", result.CostReplies, 1875.00)
	assertMoney(t, "CostQualified", result.CostQualified, 1656.25)
	assertMoney(t, "CostBooked", result.CostBooked, 2875.00)
	assertMoney(t, "CalculatedCost", result.CalculatedCost, 6831.25)
	assertMoney(t, "TotalCost", result.TotalCost, 6831.25)

	// No minimum configured, so no floor line.
	if result.FloorApplied() {
		t.Error("FloorApplied() = true without a minimum configured")
	}
	if len(result.Breakdown) != 4 {
		t.Errorf("len(Breakdown) = %d, want 4", len(result.Breakdown))
	}

	assertMoney(t, "CostPerLead", result.CostPerLead, 6831.25/2500)
	assertMoney(t, "CostPerAcquisition", result.CostPerAcquisition, 6831.25/30.9375)
}

func TestSimulateMinimumBilling(t *testing.T) {
	cfg := flatConfig(1000)
	cfg.MinimumBilling = decimal.NewFromInt(1500)

	result, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	assertMoney(t, "CalculatedCost", result.CalculatedCost, 1000)
	assertMoney(t, "TotalCost", result.TotalCost, 1500)
	if !result.FloorApplied() {
		t.Fatal("FloorApplied() = false, want true")
	}
	assertMoney(t, "FloorAdjustment", result.FloorAdjustment(), 500)

	// The floor shows up as a fifth, quantity-less breakdown line.
	if len(result.Breakdown) != 5 {
		t.Fatalf("len(Breakdown) = %d, want 5", len(result.Breakdown))
	}
	floor := result.Breakdown[4]
	if floor.Component != types.ComponentFloor {
		t.Errorf("last line component = %s, want %s", floor.Component, types.ComponentFloor)
	}
	if floor.HasQuantity {
		t.Error("floor line should be quantity-less")
	}
	assertMoney(t, "floor line cost", floor.Cost, 500)
}

func TestSimulateMinimumNotApplied(t *testing.T) {
	cfg := flatConfig(1000)
	cfg.MinimumBilling = decimal.NewFromInt(800)

	result, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	assertMoney(t, "TotalCost", result.TotalCost, 1000)
	if result.FloorApplied() {
		t.Error("FloorApplied() = true, want false")
	}
}

func TestSimulateTotalCoversMinimum(t *testing.T) {
	for _, minimum := range []int64{0, 100, 5000, 50000} {
		cfg := pricing.ReferenceConfig()
		cfg.MinimumBilling = decimal.NewFromInt(minimum)
		result, err := Simulate(cfg)
		if err != nil {
			t.Fatalf("Simulate() error = %v", err)
		}
		if result.TotalCost.LessThan(cfg.MinimumBilling) {
			t.Errorf("minimum %d: TotalCost %s below the floor", minimum, result.TotalCost)
		}
	}
}

func TestSimulateGuardedDivision(t *testing.T) {
	t.Run("zero leads yields zero CPL", func(t *testing.T) {
		result, err := Simulate(flatConfig(0))
		if err != nil {
			t.Fatalf("Simulate() error = %v", err)
		}
		if !result.CostPerLead.IsZero() {
			t.Errorf("CostPerLead = %s, want 0", result.CostPerLead)
		}
		if !result.CostPerAcquisition.IsZero() {
			t.Errorf("CostPerAcquisition = %s, want 0", result.CostPerAcquisition)
		}
	})

	t.Run("zero booking yields zero CPA", func(t *testing.T) {
		cfg := pricing.ReferenceConfig()
		cfg.Rates.Booking = 0

		result, err := Simulate(cfg)
		if err != nil {
			t.Fatalf("Simulate() error = %v", err)
		}
		if result.Counts.Booked != 0 {
			t.Errorf("Booked = %v, want 0", result.Counts.Booked)
		}
		if !result.CostBooked.IsZero() {
			t.Errorf("CostBooked = %s, want 0", result.CostBooked)
		}
		if !result.CostPerAcquisition.IsZero() {
			t.Errorf("CostPerAcquisition = %s, want 0", result.CostPerAcquisition)
		}
	})

	t.Run("zero qualification empties the booked stage", func(t *testing.T) {
		cfg := pricing.ReferenceConfig()
		cfg.Rates.Qualification = 0

		result, err := Simulate(cfg)
		if err != nil {
			t.Fatalf("Simulate() error = %v", err)
		}
		if result.Counts.Booked != 0 || !result.CostPerAcquisition.IsZero() {
			t.Errorf("Booked = %v, CPA = %s, want both zero", result.Counts.Booked, result.CostPerAcquisition)
		}
	})
}

func TestValidateConfigRejects(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*types.SimulationConfig)
		wantType errors.Type
	}{
		{
			name:     "negative total leads",
			mutate:   func(c *types.SimulationConfig) { c.TotalLeads = -1 },
			wantType: errors.TypeInput,
		},
		{
			name:     "negative minimum billing",
			mutate:   func(c *types.SimulationConfig) { c.MinimumBilling = decimal.NewFromInt(-1) },
			wantType: errors.TypeInput,
		},
		{
			name:     "response rate above one",
			mutate:   func(c *types.SimulationConfig) { c.Rates.Response = 1.5 },
			wantType: errors.TypeRate,
		},
		{
			name:     "negative qualification rate",
			mutate:   func(c *types.SimulationConfig) { c.Rates.Qualification = -0.1 },
			wantType: errors.TypeRate,
		},
		{
			name:     "booking rate above one",
			mutate:   func(c *types.SimulationConfig) { c.Rates.Booking = 2 },
			wantType: errors.TypeRate,
		},
		{
			name: "malformed leads table",
			mutate: func(c *types.SimulationConfig) {
				c.Tables.Leads.Tiers = []types.Tier{{Min: 100, Max: 100, UnitPrice: decimal.NewFromInt(1)}}
			},
			wantType: errors.TypeTable,
		},
		{
			name: "negative no-reply price",
			mutate: func(c *types.SimulationConfig) {
				c.Tables.NoReply.UnitPrice = decimal.NewFromFloat(-0.20)
			},
			wantType: errors.TypeTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := pricing.ReferenceConfig()
			tt.mutate(&cfg)
			_, err := Simulate(cfg)
			if !errors.IsType(err, tt.wantType) {
				t.Fatalf("expected %s, got %v", tt.wantType, err)
			}
		})
	}
}

func TestSimulateIdempotent(t *testing.T) {
	cfg := pricing.ReferenceConfig()
	cfg.MinimumBilling = decimal.NewFromInt(5000)

	first, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	second, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if !first.TotalCost.Equal(second.TotalCost) {
		t.Errorf("TotalCost differs: %s vs %s", first.TotalCost, second.TotalCost)
	}
	if !first.CalculatedCost.Equal(second.CalculatedCost) {
		t.Errorf("CalculatedCost differs: %s vs %s", first.CalculatedCost, second.CalculatedCost)
	}
	if !first.CostPerLead.Equal(second.CostPerLead) {
		t.Errorf("CostPerLead differs: %s vs %s", first.CostPerLead, second.CostPerLead)
	}
	if first.Counts != second.Counts {
		t.Errorf("Counts differ: %+v vs %+v", first.Counts, second.Counts)
	}
}

func TestBreakdownSharesSumToFull(t *testing.T) {
	cfg := pricing.ReferenceConfig()
	cfg.MinimumBilling = decimal.NewFromInt(10000)

	result, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	var sum float64
	for _, line := range result.Breakdown {
		sum += line.Share
	}
	if sum < 99.9 || sum > 100.1 {
		t.Errorf("breakdown shares sum to %v, want ~100", sum)
	}
}
