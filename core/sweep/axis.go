// Package sweep builds sensitivity surfaces over the cost model by repeated
// simulation: 1-D total-cost curves over lead volume per rate variation, and
// 2-D rate-vs-rate matrices at a fixed volume.
package sweep

import (
	"fmt"
	"math"

	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/errors"
)

// RateDimension identifies which funnel rate a sweep varies
type RateDimension string

const (
	DimResponse      RateDimension = "response"
	DimQualification RateDimension = "qualification"
	DimBooking       RateDimension = "booking"
)

// Label returns a human-readable name for the dimension
func (d RateDimension) Label() string {
	switch d {
	case DimResponse:
		return "Response rate"
	case DimQualification:
		return "Qualification rate"
	case DimBooking:
		return "Booking rate"
	default:
		return string(d)
	}
}

// VariationSpec describes the rate variations generated around a target:
// StepsEachSide steps of Step percentage points below and above it.
type VariationSpec struct {
	Step          float64 `json:"step"`
	StepsEachSide int     `json:"steps_each_side"`
}

// DefaultVariation returns the default variation spread for a dimension. Booking uses
// wider 15pp steps; the other dimensions use 10pp.
func DefaultVariation(dim RateDimension) VariationSpec {
	if dim == DimBooking {
		return VariationSpec{Step: 0.15, StepsEachSide: 2}
	}
	return VariationSpec{Step: 0.10, StepsEachSide: 2}
}

func (s VariationSpec) validate() error {
	if s.Step <= 0 {
		return errors.Inputf("variation step must be positive, got %v", s.Step)
	}
	if s.StepsEachSide < 0 {
		return errors.Inputf("steps each side must be non-negative, got %d", s.StepsEachSide)
	}
	return nil
}

// RateVariation is one labeled rate value in a sweep
type RateVariation struct {
	// Label names the variation, e.g. "-20pp (5.0%)" or "Target (15.0%)"
	Label string `json:"label"`

	// Rate is the varied rate value
	Rate float64 `json:"rate"`

	// IsTarget marks the unmodified target rate
	IsTarget bool `json:"is_target"`
}

// Variations generates the labeled rate values around a target, ascending
// from the lowest. Variations that would leave [0,1] are skipped rather
// than clamped, so the series set shrinks near the bounds.
func Variations(target float64, spec VariationSpec) []RateVariation {
	variations := make([]RateVariation, 0, 2*spec.StepsEachSide+1)
	for i := -spec.StepsEachSide; i <= spec.StepsEachSide; i++ {
		rate := target + float64(i)*spec.Step
		if rate < 0 || rate > 1 {
			continue
		}
		if i == 0 {
			variations = append(variations, RateVariation{
				Label:    fmt.Sprintf("Target (%.1f%%)", target*100),
				Rate:     target,
				IsTarget: true,
			})
			continue
		}
		offsetPP := float64(i) * spec.Step * 100
		variations = append(variations, RateVariation{
			Label: fmt.Sprintf("%+.0fpp (%.1f%%)", offsetPP, rate*100),
			Rate:  rate,
		})
	}
	return variations
}

// RateAxis is an inclusive ascending range of rate values for a grid axis
type RateAxis struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// DefaultGridAxis returns the reference grid axis for a dimension:
// qualification 0-35% and booking 0-50%, both in 5pp steps.
func DefaultGridAxis(dim RateDimension) RateAxis {
	if dim == DimBooking {
		return RateAxis{Min: 0, Max: 0.50, Step: 0.05}
	}
	return RateAxis{Min: 0, Max: 0.35, Step: 0.05}
}

func (a RateAxis) validate() error {
	if a.Step <= 0 {
		return errors.Inputf("axis step must be positive, got %v", a.Step)
	}
	if a.Max < a.Min {
		return errors.Inputf("axis max (%v) must not be below min (%v)", a.Max, a.Min)
	}
	if a.Min < 0 || a.Max > 1 {
		return errors.Ratef("axis range [%v,%v] must stay within [0,1]", a.Min, a.Max)
	}
	return nil
}

// Values expands the axis into its ascending rate values
func (a RateAxis) Values() []float64 {
	n := int(math.Round((a.Max-a.Min)/a.Step)) + 1
	if n < 1 {
		n = 1
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = a.Min + float64(i)*a.Step
	}
	return values
}

// nearestIndex locates the axis value closest to a target rate. Used to
// place the target overlay on grid axes that need not contain it exactly.
func nearestIndex(values []float64, target float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, v := range values {
		if d := math.Abs(v - target); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// withRate returns a copy of the rates with one dimension replaced.
// Sweeps never mutate the base config.
func withRate(rates types.FunnelRates, dim RateDimension, value float64) types.FunnelRates {
	switch dim {
	case DimResponse:
		rates.Response = value
	case DimQualification:
		rates.Qualification = value
	case DimBooking:
		rates.Booking = value
	}
	return rates
}

// rateOf reads one dimension from the rates
func rateOf(rates types.FunnelRates, dim RateDimension) (float64, error) {
	switch dim {
	case DimResponse:
		return rates.Response, nil
	case DimQualification:
		return rates.Qualification, nil
	case DimBooking:
		return rates.Booking, nil
	default:
		return 0, errors.Inputf("unknown rate dimension %q", dim)
	}
}
