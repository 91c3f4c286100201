package engine

import (
	"github.com/shopspring/decimal"

	"github.com/heliosim/heliosim/pkg/types"
)

// Projection is the year-by-year financial series. Rows carry display-ready
// floats; the decimal cumulative and benefit series are retained so the
// summary can interpolate the break-even point without losing precision.
type Projection struct {
	Rows []types.ProjectionYear

	cumulative []decimal.Decimal
	benefit    []decimal.Decimal
}

// BuildProjection runs the yearly recurrence for exactly
// types.ProjectionYears rows. The whole chain stays in decimals; each value
// converts to a float once, when it lands on its row.
func BuildProjection(cfg types.SolarConfig, prod ProductionModel, cost CostModel) Projection {
	annualConsumption := dec(cfg.MonthlyUsageKWH).Mul(decTwelve)
	degradationStep := decOne.Sub(pctFraction(cfg.PanelDegradationRate))
	inflationStep := decOne.Add(pctFraction(cfg.UtilityInflationRate))
	sellRate := dec(cfg.NetMeteringSellRate)

	p := Projection{
		Rows:       make([]types.ProjectionYear, 0, types.ProjectionYears),
		cumulative: make([]decimal.Decimal, 0, types.ProjectionYears),
		benefit:    make([]decimal.Decimal, 0, types.ProjectionYears),
	}

	// loop state: the utility rate compounds once per year, the degradation
	// factor decays once per year (year 1 has zero degradation)
	rate := dec(cfg.UtilityRate)
	factor := decOne
	cumulative := decimal.Zero
	for i := 0; i < types.ProjectionYears; i++ {
		if i > 0 {
			factor = factor.Mul(degradationStep)
		}

		production := prod.AnnualProductionKWH.Mul(factor)
		consumedOnSite := decimal.Min(production, annualConsumption)
		savings := consumedOnSite.Mul(rate)

		income := decimal.Zero
		if cfg.NetMetering {
			surplus := decimal.Max(production.Sub(annualConsumption), decimal.Zero)
			income = surplus.Mul(sellRate)
		}

		benefit := savings.Add(income)
		cumulative = cumulative.Add(benefit)
		remaining := decimal.Max(cost.NetUpfrontCost.Sub(cumulative), decimal.Zero)

		p.Rows = append(p.Rows, types.ProjectionYear{
			Year:                    i + 1,
			ProductionKWH:           production.InexactFloat64(),
			DegradationPercent:      decOne.Sub(factor).Mul(decHundred).InexactFloat64(),
			EnergySavings:           savings.InexactFloat64(),
			NetMeteringIncome:       income.InexactFloat64(),
			TotalBenefit:            benefit.InexactFloat64(),
			CumulativeSavings:       cumulative.InexactFloat64(),
			UtilityCostWithoutSolar: annualConsumption.Mul(rate).InexactFloat64(),
			SolarSystemCumulative:   remaining.InexactFloat64(),
		})
		p.cumulative = append(p.cumulative, cumulative)
		p.benefit = append(p.benefit, benefit)

		rate = rate.Mul(inflationStep)
	}

	return p
}
