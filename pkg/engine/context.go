package engine

import (
	"fmt"
	"strings"

	"github.com/heliosim/heliosim/pkg/types"
)

// ModelContext serializes the headline snapshot figures into a plain-text
// block for downstream text consumers (chat context, report bodies).
func ModelContext(snap types.ModelSnapshot) string {
	var b strings.Builder
	b.WriteString("Solar system model:\n")
	fmt.Fprintf(&b, "- System size: %.2f kW\n", snap.SystemSizeKW)
	fmt.Fprintf(&b, "- Estimated annual production: %.1f kWh\n", snap.AnnualProductionKWH)
	fmt.Fprintf(&b, "- Average monthly production: %.1f kWh\n", snap.AverageMonthlyProductionKWH)
	fmt.Fprintf(&b, "- Net upfront cost: $%.2f\n", snap.NetUpfrontCost)
	fmt.Fprintf(&b, "- Total %d-year savings: $%.2f\n", len(snap.Projection), snap.Summary.TotalSavings)
	fmt.Fprintf(&b, "- Break-even: %s\n", snap.Summary.BreakEvenLabel)
	fmt.Fprintf(&b, "- Return on investment: %.1f%%\n", snap.Summary.RoiPercent)
	if snap.Battery.UsableCapacityKWH > 0 {
		fmt.Fprintf(&b, "- Battery backup: %.1f hours at the critical load\n", snap.Battery.AutonomyHours)
	}
	if snap.Loan != nil {
		fmt.Fprintf(&b, "- Loan payment: $%.2f/month over %.0f years\n", snap.Loan.MonthlyPayment, snap.Loan.TermYears)
	}
	return b.String()
}
