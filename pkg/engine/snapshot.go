// Package engine implements the solar financial simulation: system sizing,
// upfront cost, the 25-year projection with break-even and ROI, the battery
// outage estimate and the loan estimate, assembled into one snapshot.
//
// Everything here is pure and synchronous: no I/O, no shared state, and no
// panics for any numeric input. Intermediate arithmetic uses
// arbitrary-precision decimals so error cannot accumulate across the
// compounding yearly loop; floats appear only on the output structs.
package engine

import (
	"github.com/heliosim/heliosim/pkg/types"
)

// BuildSnapshot recomputes the full model from scratch. Callers re-invoke it
// on every config change; nothing is cached between calls.
func BuildSnapshot(cfg types.SolarConfig, sim types.SimulationInputs) types.ModelSnapshot {
	cfg = types.SanitizeConfig(cfg)
	sim = types.SanitizeSimulationInputs(sim)

	prod := BuildProduction(cfg)
	cost := BuildCost(cfg)
	proj := BuildProjection(cfg, prod, cost)

	return types.ModelSnapshot{
		SystemSizeKW:                prod.SystemSizeKW.InexactFloat64(),
		AnnualProductionKWH:         prod.AnnualProductionKWH.InexactFloat64(),
		AverageMonthlyProductionKWH: prod.AverageMonthlyProductionKWH.InexactFloat64(),
		TotalUpfrontCost:            cost.TotalUpfrontCost.InexactFloat64(),
		NetUpfrontCost:              cost.NetUpfrontCost.InexactFloat64(),
		Projection:                  proj.Rows,
		Summary:                     BuildSummary(cost, proj),
		Battery:                     SimulateBattery(cfg, sim, prod),
		Loan:                        BuildLoan(cfg),
	}
}
