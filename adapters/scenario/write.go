// Package scenario - Scenario file generation
package scenario

import (
	"fmt"
	"os"
	"strings"

	"github.com/SailerAI/arco-pricing/core/types"
)

// Render serializes a simulation config as scenario HCL
func Render(cfg types.SimulationConfig) string {
	var b strings.Builder

	b.WriteString("scenario {\n")
	fmt.Fprintf(&b, "  leads           = %s\n", formatNumber(cfg.TotalLeads))
	fmt.Fprintf(&b, "  minimum_billing = %s\n", cfg.MinimumBilling.String())
	fmt.Fprintf(&b, "  currency        = %q\n", cfg.Currency)
	b.WriteString("\n")
	b.WriteString("  rates {\n")
	fmt.Fprintf(&b, "    response      = %s\n", formatNumber(cfg.Rates.Response))
	fmt.Fprintf(&b, "    qualification = %s\n", formatNumber(cfg.Rates.Qualification))
	fmt.Fprintf(&b, "    booking       = %s\n", formatNumber(cfg.Rates.Booking))
	b.WriteString("  }\n")

	fmt.Fprintf(&b, "\n  table %q {\n", TableNoReply)
	fmt.Fprintf(&b, "    unit_price = %s\n", cfg.Tables.NoReply.UnitPrice.String())
	b.WriteString("  }\n")

	writeTiered(&b, TableLeads, cfg.Tables.Leads)
	writeTiered(&b, TableQualified, cfg.Tables.Qualified)
	writeTiered(&b, TableBooked, cfg.Tables.Booked)

	b.WriteString("}\n")
	return b.String()
}

// Write saves a config as a scenario file
func Write(path string, cfg types.SimulationConfig) error {
	return os.WriteFile(path, []byte(Render(cfg)), 0644)
}

func writeTiered(b *strings.Builder, name string, table types.PricingTable) {
	fmt.Fprintf(b, "\n  table %q {\n", name)
	for _, tier := range table.Tiers {
		b.WriteString("    tier {\n")
		fmt.Fprintf(b, "      min        = %s\n", formatNumber(tier.Min))
		fmt.Fprintf(b, "      max        = %s\n", formatNumber(tier.Max))
		fmt.Fprintf(b, "      unit_price = %s\n", tier.UnitPrice.String())
		b.WriteString("    }\n")
	}
	b.WriteString("  }\n")
}

func formatNumber(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}
