package engine

import (
	"github.com/shopspring/decimal"

	"github.com/heliosim/heliosim/pkg/types"
)

// BuildSummary derives the headline numbers from a finished projection.
func BuildSummary(cost CostModel, proj Projection) types.FinancialSummary {
	totalSavings := decimal.Zero
	if n := len(proj.cumulative); n > 0 {
		totalSavings = proj.cumulative[n-1]
	}

	net := cost.NetUpfrontCost
	roi := decimal.Zero
	if net.IsPositive() {
		roi = totalSavings.Div(net).Mul(decHundred)
	}

	summary := types.FinancialSummary{
		TotalSavings:   totalSavings.InexactFloat64(),
		NetUpfrontCost: net.InexactFloat64(),
		RoiPercent:     roi.InexactFloat64(),
	}

	if breakEven, reached := breakEvenYears(net, proj); reached {
		rounded := breakEven.Round(2).InexactFloat64()
		summary.BreakEvenYear = &rounded
		summary.BreakEvenLabel = breakEven.Round(1).StringFixed(1) + " years"
	} else {
		summary.BreakEvenLabel = "not reached"
	}
	return summary
}

// breakEvenYears finds the fractional year where cumulative savings first
// meet the net upfront cost. A system that costs nothing breaks even
// immediately. At the crossing row, the deficit still owed after the prior
// year divided by the benefit earned during the crossing year gives the
// fraction of that year needed.
func breakEvenYears(net decimal.Decimal, proj Projection) (decimal.Decimal, bool) {
	if !net.IsPositive() {
		return decimal.Zero, true
	}

	for i, cum := range proj.cumulative {
		if cum.LessThan(net) {
			continue
		}
		previous := decimal.Zero
		if i > 0 {
			previous = proj.cumulative[i-1]
		}
		deficit := net.Sub(previous)
		// At the first crossing the benefit always covers the deficit, so a
		// zero benefit can only mean the boundary was already met exactly.
		// Guard the divide and land on the year boundary in that case.
		fraction := decimal.Zero
		if proj.benefit[i].IsPositive() {
			fraction = deficit.Div(proj.benefit[i])
		}
		return decimal.NewFromInt(int64(i)).Add(fraction), true
	}
	return decimal.Zero, false
}
