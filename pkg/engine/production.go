package engine

import (
	"github.com/shopspring/decimal"

	"github.com/heliosim/heliosim/pkg/types"
)

// ProductionModel holds the derived system size and energy yield. Values are
// kept as decimals so downstream models keep computing on them without a
// float round trip.
type ProductionModel struct {
	SystemSizeKW                decimal.Decimal
	AnnualProductionKWH         decimal.Decimal
	AverageMonthlyProductionKWH decimal.Decimal
}

// BuildProduction derives system size and yearly yield from the config.
// Annual production scales the ideal peak-sun-hour yield by inverter
// efficiency, cabling loss, and the ratio of the declared panel efficiency
// to the STC baseline, so a user's panel choice proportionally adjusts yield
// without re-deriving irradiance physics.
func BuildProduction(cfg types.SolarConfig) ProductionModel {
	sizeKW := dec(cfg.PanelCount).Mul(dec(cfg.PanelWattage)).Div(decThousand)

	annual := sizeKW.
		Mul(dec(cfg.PeakSunHours)).
		Mul(decDaysPerYear).
		Mul(pctFraction(cfg.InverterEfficiency)).
		Mul(decOne.Sub(pctFraction(cfg.CablingLoss))).
		Mul(dec(cfg.PanelEfficiency).Div(stcBaselineEfficiency))

	return ProductionModel{
		SystemSizeKW:                sizeKW,
		AnnualProductionKWH:         annual,
		AverageMonthlyProductionKWH: annual.Div(decTwelve),
	}
}
