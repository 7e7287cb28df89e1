// Package cmd provides the CLI commands for arco.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SailerAI/arco-pricing/core/sweep"
	"github.com/SailerAI/arco-pricing/internal/config"
	"github.com/SailerAI/arco-pricing/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "arco",
	Short: "Simulate sales-prospecting campaign costs",
	Long: `arco models the cost of a prospecting campaign that moves leads through
a funnel (sent -> replied -> qualified -> booked), charging each stage
against a tiered price schedule.

Examples:
  arco simulate scenario.hcl
  arco simulate --leads 2500 --response 0.15
  arco sweep volume scenario.hcl
  arco sweep grid scenario.hcl --format markdown`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.arco.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}

	if cfg.Sweep.Workers > 0 {
		sweep.Workers = cfg.Sweep.Workers
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("arco version 0.1.0")
	},
}

// configCmd prints the active configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("currency:       %s\n", cfg.Currency)
		fmt.Printf("default format: %s\n", cfg.Output.DefaultFormat)
		fmt.Printf("sweep volume:   0-%.0f step %.0f\n", cfg.Sweep.MaxVolume, cfg.Sweep.VolumeStep)
		return nil
	},
}
