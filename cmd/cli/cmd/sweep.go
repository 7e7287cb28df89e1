// Package cmd - sweep commands
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SailerAI/arco-pricing/core/sweep"
	"github.com/SailerAI/arco-pricing/internal/config"
	"github.com/SailerAI/arco-pricing/internal/errors"
)

var (
	sweepFormat string

	volumeDim  string
	volumeMax  float64
	volumeStep float64

	gridRowDim  string
	gridColDim  string
	gridRowMax  float64
	gridRowStep float64
	gridColMax  float64
	gridColStep float64
)

// sweepCmd groups the sensitivity sweep commands
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Explore cost sensitivity to rate and volume assumptions",
}

// volumeCmd represents the sweep volume command
var volumeCmd = &cobra.Command{
	Use:   "volume [scenario.hcl]",
	Short: "Sweep total cost over lead volume for rate variations",
	Long: `Produce one total-cost series per rate variation around the scenario's
target rate, across lead volumes from zero to the configured maximum.

Examples:
  arco sweep volume scenario.hcl
  arco sweep volume --dimension booking
  arco sweep volume scenario.hcl --max-volume 5000 --step 250`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVolumeSweep,
}

// gridCmd represents the sweep grid command
var gridCmd = &cobra.Command{
	Use:   "grid [scenario.hcl]",
	Short: "Sweep two rates against each other at a fixed volume",
	Long: `Evaluate every combination of two rate axes at the scenario's lead
volume, producing total-cost, cost-per-meeting and booked-meeting matrices.

Examples:
  arco sweep grid scenario.hcl
  arco sweep grid --rows qualification --cols booking
  arco sweep grid scenario.hcl --row-max 0.5 --row-step 0.1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGridSweep,
}

func init() {
	sweepCmd.PersistentFlags().StringVarP(&sweepFormat, "format", "f", "", "output format (cli, json, markdown)")

	volumeCmd.Flags().StringVarP(&volumeDim, "dimension", "d", string(sweep.DimResponse), "rate to vary (response, qualification, booking)")
	volumeCmd.Flags().Float64Var(&volumeMax, "max-volume", 0, "volume ceiling (default from config)")
	volumeCmd.Flags().Float64Var(&volumeStep, "step", 0, "volume increment (default from config)")

	gridCmd.Flags().StringVar(&gridRowDim, "rows", string(sweep.DimQualification), "rate on the row axis")
	gridCmd.Flags().StringVar(&gridColDim, "cols", string(sweep.DimBooking), "rate on the column axis")
	gridCmd.Flags().Float64Var(&gridRowMax, "row-max", 0, "row axis ceiling (default per dimension)")
	gridCmd.Flags().Float64Var(&gridRowStep, "row-step", 0, "row axis increment (default 0.05)")
	gridCmd.Flags().Float64Var(&gridColMax, "col-max", 0, "column axis ceiling (default per dimension)")
	gridCmd.Flags().Float64Var(&gridColStep, "col-step", 0, "column axis increment (default 0.05)")

	sweepCmd.AddCommand(volumeCmd)
	sweepCmd.AddCommand(gridCmd)
}

func parseDimension(name string) (sweep.RateDimension, error) {
	switch sweep.RateDimension(name) {
	case sweep.DimResponse, sweep.DimQualification, sweep.DimBooking:
		return sweep.RateDimension(name), nil
	default:
		return "", errors.Inputf("unknown rate dimension %q", name)
	}
}

func runVolumeSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	dim, err := parseDimension(volumeDim)
	if err != nil {
		return err
	}

	appCfg := config.Get()
	axis := sweep.VolumeAxis{Max: appCfg.Sweep.MaxVolume, Step: appCfg.Sweep.VolumeStep}
	if cmd.Flags().Changed("max-volume") {
		axis.Max = volumeMax
	}
	if cmd.Flags().Changed("step") {
		axis.Step = volumeStep
	}

	result, err := sweep.SweepVolume(cfg, dim, sweep.DefaultVariation(dim), axis)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(sweepFormat)
	if err != nil {
		return err
	}
	return formatter.RenderVolumeSweep(os.Stdout, result)
}

func runGridSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	rowDim, err := parseDimension(gridRowDim)
	if err != nil {
		return err
	}
	colDim, err := parseDimension(gridColDim)
	if err != nil {
		return err
	}

	rowAxis := sweep.DefaultGridAxis(rowDim)
	colAxis := sweep.DefaultGridAxis(colDim)
	if cmd.Flags().Changed("row-max") {
		rowAxis.Max = gridRowMax
	}
	if cmd.Flags().Changed("row-step") {
		rowAxis.Step = gridRowStep
	}
	if cmd.Flags().Changed("col-max") {
		colAxis.Max = gridColMax
	}
	if cmd.Flags().Changed("col-step") {
		colAxis.Step = gridColStep
	}

	result, err := sweep.SweepGrid(cfg, rowDim, colDim, rowAxis, colAxis)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(sweepFormat)
	if err != nil {
		return err
	}
	return formatter.RenderGridSweep(os.Stdout, result)
}
