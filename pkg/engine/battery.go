package engine

import (
	"github.com/shopspring/decimal"

	"github.com/heliosim/heliosim/pkg/types"
)

// SimulateBattery estimates outage autonomy and monthly bill offset. It only
// reads the production model's average month and the config's rates; the
// 25-year projection plays no part here.
func SimulateBattery(cfg types.SolarConfig, sim types.SimulationInputs, prod ProductionModel) types.BatterySimulationResult {
	usable := decimal.Zero
	if cfg.BatteryEnabled {
		usable = dec(cfg.BatteryCapacityKWH).Mul(pctFraction(cfg.BatteryDepthOfDischarge))
	}

	autonomy := decimal.Zero
	if criticalLoadKW := dec(sim.CriticalLoadWatts).Div(decThousand); criticalLoadKW.IsPositive() {
		autonomy = usable.Div(criticalLoadKW)
	}

	monthlyUsage := dec(cfg.MonthlyUsageKWH)
	selfConsumption := decimal.Min(prod.AverageMonthlyProductionKWH, monthlyUsage)
	monthlySavings := selfConsumption.Mul(dec(cfg.UtilityRate))
	if cfg.NetMetering {
		surplus := decimal.Max(prod.AverageMonthlyProductionKWH.Sub(monthlyUsage), decimal.Zero)
		monthlySavings = monthlySavings.Add(surplus.Mul(dec(cfg.NetMeteringSellRate)))
	}

	expensive := dec(sim.ExpensiveMonthlyBill)
	cheapest := dec(sim.CheapestMonthlyBill)

	return types.BatterySimulationResult{
		UsableCapacityKWH:       usable.InexactFloat64(),
		AutonomyHours:           autonomy.InexactFloat64(),
		MonthlySavings:          monthlySavings.InexactFloat64(),
		SavingsInExpensiveMonth: decimal.Min(expensive, monthlySavings).InexactFloat64(),
		CoversExpensiveMonth:    monthlySavings.GreaterThanOrEqual(expensive),
		SavingsInCheapestMonth:  decimal.Min(cheapest, monthlySavings).InexactFloat64(),
		CoversCheapestMonth:     monthlySavings.GreaterThanOrEqual(cheapest),
	}
}
