package engine

import (
	"github.com/shopspring/decimal"

	"github.com/heliosim/heliosim/pkg/types"
)

// CostModel holds the gross and tax-credit-adjusted upfront cost.
type CostModel struct {
	TotalUpfrontCost decimal.Decimal
	NetUpfrontCost   decimal.Decimal
}

// BuildCost sums equipment and soft costs and applies the federal tax
// credit. The battery only counts when it is enabled.
func BuildCost(cfg types.SolarConfig) CostModel {
	total := dec(cfg.PanelCount).Mul(dec(cfg.CostPerPanel)).
		Add(dec(cfg.InverterCost))
	if cfg.BatteryEnabled {
		total = total.Add(dec(cfg.BatteryCost))
	}
	total = total.
		Add(dec(cfg.MountingCost)).
		Add(dec(cfg.MonitoringCost)).
		Add(dec(cfg.LaborCost)).
		Add(dec(cfg.OtherFees))

	return CostModel{
		TotalUpfrontCost: total,
		NetUpfrontCost:   total.Mul(decOne.Sub(pctFraction(cfg.FederalTaxCredit))),
	}
}
