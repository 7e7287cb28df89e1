// Package sweep - Volume sensitivity series
package sweep

import (
	"math"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/SailerAI/arco-pricing/core/simulate"
	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/errors"
	"github.com/SailerAI/arco-pricing/internal/logging"
)

// VolumeAxis is the lead-volume range a series covers, from zero to Max in
// Step increments.
type VolumeAxis struct {
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// DefaultVolumeAxis returns the reference range, 0 to 3500 in steps of 100
func DefaultVolumeAxis() VolumeAxis {
	return VolumeAxis{Max: 3500, Step: 100}
}

func (a VolumeAxis) validate() error {
	if a.Step <= 0 {
		return errors.Inputf("volume step must be positive, got %v", a.Step)
	}
	if a.Max < 0 {
		return errors.Inputf("volume max must be non-negative, got %v", a.Max)
	}
	return nil
}

// Values expands the axis into its ascending volumes
func (a VolumeAxis) Values() []float64 {
	n := int(math.Floor(a.Max/a.Step)) + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i) * a.Step
	}
	return values
}

// VolumePoint is one (volume, total cost) pair of a series
type VolumePoint struct {
	Volume    float64         `json:"volume"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// VolumeSeries is one labeled rate variation's cost curve
type VolumeSeries struct {
	// Variation labels the series and carries its rate value
	Variation RateVariation `json:"variation"`

	// Points are ordered by ascending volume
	Points []VolumePoint `json:"points"`
}

// TargetPoint is the base scenario's (volume, cost) overlay marker
type TargetPoint struct {
	Volume    float64         `json:"volume"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// VolumeSweepResult holds one dimension's sensitivity series plus the
// metadata the presentation layer needs to render without recomputation.
type VolumeSweepResult struct {
	// Dimension is the varied rate
	Dimension RateDimension `json:"dimension"`

	// Volumes are the shared x-axis values
	Volumes []float64 `json:"volumes"`

	// Series holds one curve per surviving rate variation
	Series []VolumeSeries `json:"series"`

	// Target is the base scenario overlay point
	Target TargetPoint `json:"target"`

	// Currency is carried from the config
	Currency types.Currency `json:"currency"`
}

// SweepVolume produces total-cost curves over lead volume, one series per
// rate variation around the base config's rate in the given dimension.
// The base config is never mutated; every cell simulates a derived copy.
func SweepVolume(cfg types.SimulationConfig, dim RateDimension, spec VariationSpec, axis VolumeAxis) (*VolumeSweepResult, error) {
	if err := simulate.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if err := axis.validate(); err != nil {
		return nil, err
	}

	target, err := rateOf(cfg.Rates, dim)
	if err != nil {
		return nil, err
	}

	targetResult, err := simulate.Simulate(cfg)
	if err != nil {
		return nil, err
	}

	variations := Variations(target, spec)
	volumes := axis.Values()

	result := &VolumeSweepResult{
		Dimension: dim,
		Volumes:   volumes,
		Series:    make([]VolumeSeries, len(variations)),
		Target: TargetPoint{
			Volume:    cfg.TotalLeads,
			TotalCost: targetResult.TotalCost,
		},
		Currency: cfg.Currency,
	}
	for i, v := range variations {
		result.Series[i] = VolumeSeries{
			Variation: v,
			Points:    make([]VolumePoint, len(volumes)),
		}
	}

	logging.Debug("running volume sweep",
		zap.String("dimension", string(dim)),
		zap.Int("series", len(variations)),
		zap.Int("points", len(volumes)))

	// Flatten (series, volume) cells and evaluate them in parallel.
	cells := len(variations) * len(volumes)
	var firstErr error
	var errOnce sync.Once
	forEach(cells, func(i int) {
		si, vi := i/len(volumes), i%len(volumes)

		cell := cfg
		cell.TotalLeads = volumes[vi]
		cell.Rates = withRate(cfg.Rates, dim, variations[si].Rate)

		r, err := simulate.Simulate(cell)
		if err != nil {
			errOnce.Do(func() { firstErr = err })
			return
		}
		result.Series[si].Points[vi] = VolumePoint{
			Volume:    volumes[vi],
			TotalCost: r.TotalCost,
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}

	return result, nil
}
