// Package cmd - scenario command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SailerAI/arco-pricing/adapters/scenario"
	"github.com/SailerAI/arco-pricing/core/pricing"
)

var scenarioForce bool

// scenarioCmd groups scenario file management
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage scenario files",
}

// scenarioInitCmd writes a reference scenario file
var scenarioInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a scenario file seeded with the reference schedules",
	Long: `Create a scenario file with the reference price schedules and target
rates as a starting point for editing.

Examples:
  arco scenario init
  arco scenario init campaigns/q3.hcl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScenarioInit,
}

func init() {
	scenarioInitCmd.Flags().BoolVar(&scenarioForce, "force", false, "overwrite an existing file")
	scenarioCmd.AddCommand(scenarioInitCmd)
}

func runScenarioInit(cmd *cobra.Command, args []string) error {
	path := "scenario.hcl"
	if len(args) > 0 {
		path = args[0]
	}

	if !scenarioForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := scenario.Write(path, pricing.ReferenceConfig()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
