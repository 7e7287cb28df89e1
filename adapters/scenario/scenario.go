// Package scenario loads simulation configs from HCL scenario files.
//
// A scenario file fully describes one simulation: lead volume, conversion
// rates, the per-stage price tables and the minimum billing floor.
//
//	scenario {
//	  leads           = 2500
//	  minimum_billing = 0
//
//	  rates {
//	    response      = 0.15
//	    qualification = 0.25
//	    booking       = 0.33
//	  }
//
//	  table "no_reply" {
//	    unit_price = 0.20
//	  }
//
//	  table "leads" {
//	    tier {
//	      min        = 0
//	      max        = 500
//	      unit_price = 5.00
//	    }
//	  }
//	}
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"github.com/SailerAI/arco-pricing/core/pricing"
	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/errors"
)

// Stage table names recognized in scenario files
const (
	TableNoReply   = "no_reply"
	TableLeads     = "leads"
	TableQualified = "qualified"
	TableBooked    = "booked"
)

type scenarioFile struct {
	Scenario scenarioBlock `hcl:"scenario,block"`
}

type scenarioBlock struct {
	Leads          float64      `hcl:"leads"`
	MinimumBilling *float64     `hcl:"minimum_billing,optional"`
	Currency       *string      `hcl:"currency,optional"`
	Rates          ratesBlock   `hcl:"rates,block"`
	Tables         []tableBlock `hcl:"table,block"`
}

type ratesBlock struct {
	Response      float64 `hcl:"response"`
	Qualification float64 `hcl:"qualification"`
	Booking       float64 `hcl:"booking"`
}

type tableBlock struct {
	Name      string      `hcl:"name,label"`
	UnitPrice *float64    `hcl:"unit_price,optional"`
	Tiers     []tierBlock `hcl:"tier,block"`
}

type tierBlock struct {
	Min       float64 `hcl:"min"`
	Max       float64 `hcl:"max"`
	UnitPrice float64 `hcl:"unit_price"`
}

// Load reads and decodes a scenario file into a simulation config
func Load(path string) (*types.SimulationConfig, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing(fmt.Sprintf("reading scenario file %s", path), err)
	}
	return Parse(src, path)
}

// Parse decodes scenario HCL source into a simulation config. The
// filename is used for diagnostics only.
func Parse(src []byte, filename string) (*types.SimulationConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parsing scenario HCL", diags)
	}

	var decoded scenarioFile
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, errors.Parsing("decoding scenario", diags)
	}

	return buildConfig(decoded.Scenario)
}

func buildConfig(s scenarioBlock) (*types.SimulationConfig, error) {
	cfg := &types.SimulationConfig{
		TotalLeads: s.Leads,
		Rates: types.FunnelRates{
			Response:      s.Rates.Response,
			Qualification: s.Rates.Qualification,
			Booking:       s.Rates.Booking,
		},
		MinimumBilling: decimal.Zero,
		Currency:       types.CurrencyBRL,
	}
	if s.MinimumBilling != nil {
		cfg.MinimumBilling = decimal.NewFromFloat(*s.MinimumBilling)
	}
	if s.Currency != nil {
		cfg.Currency = types.Currency(*s.Currency)
	}

	seen := map[string]bool{}
	for _, tb := range s.Tables {
		if seen[tb.Name] {
			return nil, errors.Newf(errors.TypeParsing, "duplicate table %q", tb.Name)
		}
		seen[tb.Name] = true

		switch tb.Name {
		case TableNoReply:
			flat, err := buildFlatTable(tb)
			if err != nil {
				return nil, err
			}
			cfg.Tables.NoReply = flat
		case TableLeads, TableQualified, TableBooked:
			table, err := buildTieredTable(tb)
			if err != nil {
				return nil, err
			}
			switch tb.Name {
			case TableLeads:
				cfg.Tables.Leads = table
			case TableQualified:
				cfg.Tables.Qualified = table
			case TableBooked:
				cfg.Tables.Booked = table
			}
		default:
			return nil, errors.Newf(errors.TypeParsing, "unknown table %q", tb.Name)
		}
	}

	for _, required := range []string{TableNoReply, TableLeads, TableQualified, TableBooked} {
		if !seen[required] {
			return nil, errors.Newf(errors.TypeParsing, "scenario is missing table %q", required)
		}
	}

	return cfg, nil
}

func buildFlatTable(tb tableBlock) (types.FlatTable, error) {
	if tb.UnitPrice == nil {
		return types.FlatTable{}, errors.Newf(errors.TypeParsing, "table %q requires unit_price", tb.Name)
	}
	if len(tb.Tiers) > 0 {
		return types.FlatTable{}, errors.Newf(errors.TypeParsing, "table %q is flat-rate and takes no tier blocks", tb.Name)
	}
	flat := types.FlatTable{UnitPrice: decimal.NewFromFloat(*tb.UnitPrice)}
	if err := pricing.ValidateFlat(flat); err != nil {
		return types.FlatTable{}, err
	}
	return flat, nil
}

func buildTieredTable(tb tableBlock) (types.PricingTable, error) {
	if tb.UnitPrice != nil {
		return types.PricingTable{}, errors.Newf(errors.TypeParsing, "table %q is tiered and takes tier blocks, not unit_price", tb.Name)
	}
	table := types.PricingTable{Tiers: make([]types.Tier, len(tb.Tiers))}
	for i, tier := range tb.Tiers {
		table.Tiers[i] = types.Tier{
			Min:       tier.Min,
			Max:       tier.Max,
			UnitPrice: decimal.NewFromFloat(tier.UnitPrice),
		}
	}
	if err := pricing.Validate(table); err != nil {
		if e, ok := err.(*errors.Error); ok {
			return types.PricingTable{}, e.WithContext("table", tb.Name)
		}
		return types.PricingTable{}, err
	}
	return table, nil
}
