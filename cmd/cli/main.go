// Command arco is the prospecting cost simulator CLI.
package main

import (
	"os"

	"github.com/SailerAI/arco-pricing/cmd/cli/cmd"
	"github.com/SailerAI/arco-pricing/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
