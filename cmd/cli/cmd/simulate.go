// Package cmd - simulate command
package cmd

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SailerAI/arco-pricing/adapters/scenario"
	"github.com/SailerAI/arco-pricing/core/output"
	"github.com/SailerAI/arco-pricing/core/pricing"
	"github.com/SailerAI/arco-pricing/core/simulate"
	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/config"
	"github.com/SailerAI/arco-pricing/internal/logging"
)

var (
	simFormat     string
	simLeads      float64
	simResponse   float64
	simQualify    float64
	simBooking    float64
	simMinBilling float64
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate [scenario.hcl]",
	Short: "Run a point cost estimate",
	Long: `Run one simulation and print the funnel counts, cost composition and
derived metrics.

Without a scenario file the reference price schedules and target rates are
used. Flags override the scenario's volume, rates and minimum billing.

Examples:
  arco simulate
  arco simulate scenario.hcl
  arco simulate scenario.hcl --leads 3000 --min-billing 5000
  arco simulate --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simFormat, "format", "f", "", "output format (cli, json, markdown)")
	simulateCmd.Flags().Float64Var(&simLeads, "leads", 0, "lead volume fed into the funnel")
	simulateCmd.Flags().Float64Var(&simResponse, "response", 0, "response rate in [0,1]")
	simulateCmd.Flags().Float64Var(&simQualify, "qualification", 0, "qualification rate in [0,1]")
	simulateCmd.Flags().Float64Var(&simBooking, "booking", 0, "booking rate in [0,1]")
	simulateCmd.Flags().Float64Var(&simMinBilling, "min-billing", 0, "minimum billing floor")
}

// loadScenario builds the simulation config from an optional scenario file
// plus flag overrides. Shared by simulate and sweep.
func loadScenario(cmd *cobra.Command, args []string) (types.SimulationConfig, error) {
	var cfg types.SimulationConfig
	if len(args) > 0 {
		loaded, err := scenario.Load(args[0])
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
		logging.Debug("loaded scenario", zap.String("path", args[0]))
	} else {
		cfg = pricing.ReferenceConfig()
		cfg.Currency = config.Get().Currency
	}

	flags := cmd.Flags()
	if flags.Changed("leads") {
		cfg.TotalLeads = simLeads
	}
	if flags.Changed("response") {
		cfg.Rates.Response = simResponse
	}
	if flags.Changed("qualification") {
		cfg.Rates.Qualification = simQualify
	}
	if flags.Changed("booking") {
		cfg.Rates.Booking = simBooking
	}
	if flags.Changed("min-billing") {
		cfg.MinimumBilling = decimal.NewFromFloat(simMinBilling)
	}
	return cfg, nil
}

// newFormatter resolves the output formatter, falling back to the
// configured default format.
func newFormatter(format string) (output.Formatter, error) {
	appCfg := config.Get()
	if format == "" {
		format = appCfg.Output.DefaultFormat
	}
	return output.New(output.Format(format), appCfg.Output.NoColor)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	result, err := simulate.Simulate(cfg)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(simFormat)
	if err != nil {
		return err
	}
	return formatter.RenderSimulation(os.Stdout, result)
}
