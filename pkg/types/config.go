package types

import (
	"fmt"
	"math"
)

// CurrentConfigVersion is the current version of the config struct.
// Increment this value when a field changes meaning or when new fields need
// non-zero values on older payloads.
const CurrentConfigVersion = 3

// SolarConfig holds every user-editable assumption behind one simulation
// run. All percentage fields are stored as 0-100 values, never 0-1
// fractions, and are converted at the point of use.
type SolarConfig struct {
	Version int `json:"version" yaml:"version"`

	// Utility & billing
	UtilityRate          float64 `json:"utilityRate" yaml:"utilityRate"` // $/kWh
	NetMetering          bool    `json:"netMetering" yaml:"netMetering"`
	NetMeteringSellRate  float64 `json:"netMeteringSellRate" yaml:"netMeteringSellRate"`   // $/kWh credited for exported surplus
	UtilityInflationRate float64 `json:"utilityInflationRate" yaml:"utilityInflationRate"` // %/year
	MonthlyUsageKWH      float64 `json:"monthlyUsageKWH" yaml:"monthlyUsageKWH"`

	// Incentives
	FederalTaxCredit float64 `json:"federalTaxCredit" yaml:"federalTaxCredit"` // % of total upfront cost

	// Site
	PeakSunHours float64 `json:"peakSunHours" yaml:"peakSunHours"` // hours/day

	// Panels
	PanelCount           float64 `json:"panelCount" yaml:"panelCount"`
	PanelWattage         float64 `json:"panelWattage" yaml:"panelWattage"`                 // W per panel
	PanelEfficiency      float64 `json:"panelEfficiency" yaml:"panelEfficiency"`           // %, scaled against the 21% STC baseline
	PanelDegradationRate float64 `json:"panelDegradationRate" yaml:"panelDegradationRate"` // %/year compound output loss

	// System losses
	InverterEfficiency float64 `json:"inverterEfficiency" yaml:"inverterEfficiency"` // %
	CablingLoss        float64 `json:"cablingLoss" yaml:"cablingLoss"`               // %

	// Equipment pricing
	CostPerPanel float64 `json:"costPerPanel" yaml:"costPerPanel"` // $
	InverterCost float64 `json:"inverterCost" yaml:"inverterCost"` // $
	BatteryCost  float64 `json:"batteryCost" yaml:"batteryCost"`   // $, only charged when the battery is enabled

	// Battery
	BatteryEnabled          bool    `json:"batteryEnabled" yaml:"batteryEnabled"`
	BatteryCapacityKWH      float64 `json:"batteryCapacityKWH" yaml:"batteryCapacityKWH"`
	BatteryDepthOfDischarge float64 `json:"batteryDepthOfDischarge" yaml:"batteryDepthOfDischarge"` // % of capacity usable before recharge
	BatteryPowerKW          float64 `json:"batteryPowerKW" yaml:"batteryPowerKW"`                   // continuous output

	// Soft costs
	MountingCost   float64 `json:"mountingCost" yaml:"mountingCost"`     // $
	MonitoringCost float64 `json:"monitoringCost" yaml:"monitoringCost"` // $
	LaborCost      float64 `json:"laborCost" yaml:"laborCost"`           // $
	OtherFees      float64 `json:"otherFees" yaml:"otherFees"`           // $ permits, inspection, misc

	// Loan financing
	LoanAmount       float64 `json:"loanAmount" yaml:"loanAmount"` // $ financed, 0 disables the loan summary
	LoanTermYears    float64 `json:"loanTermYears" yaml:"loanTermYears"`
	LoanInterestRate float64 `json:"loanInterestRate" yaml:"loanInterestRate"` // % APR, 0 means estimate from credit score
	CreditScore      float64 `json:"creditScore" yaml:"creditScore"`
}

// DefaultConfig returns the assumptions a new user starts from: a mid-size
// US residential install on an average rate plan.
func DefaultConfig() SolarConfig {
	return SolarConfig{
		Version: CurrentConfigVersion,

		UtilityRate:          0.17,
		NetMetering:          true,
		NetMeteringSellRate:  0.08,
		UtilityInflationRate: 3,
		MonthlyUsageKWH:      900,

		FederalTaxCredit: 30,

		PeakSunHours: 5,

		PanelCount:           20,
		PanelWattage:         400,
		PanelEfficiency:      21,
		PanelDegradationRate: 0.5,

		InverterEfficiency: 97,
		CablingLoss:        2,

		CostPerPanel: 250,
		InverterCost: 2500,
		BatteryCost:  9000,

		BatteryEnabled:          true,
		BatteryCapacityKWH:      13.5,
		BatteryDepthOfDischarge: 90,
		BatteryPowerKW:          5,

		MountingCost:   1500,
		MonitoringCost: 300,
		LaborCost:      3000,
		OtherFees:      800,

		LoanAmount:       0,
		LoanTermYears:    10,
		LoanInterestRate: 0,
		CreditScore:      720,
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// SanitizeConfig replaces every non-finite numeric field with 0 so the
// engine never sees NaN or Inf. Finite values pass through untouched.
func SanitizeConfig(c SolarConfig) SolarConfig {
	c.UtilityRate = finite(c.UtilityRate)
	c.NetMeteringSellRate = finite(c.NetMeteringSellRate)
	c.UtilityInflationRate = finite(c.UtilityInflationRate)
	c.MonthlyUsageKWH = finite(c.MonthlyUsageKWH)
	c.FederalTaxCredit = finite(c.FederalTaxCredit)
	c.PeakSunHours = finite(c.PeakSunHours)
	c.PanelCount = finite(c.PanelCount)
	c.PanelWattage = finite(c.PanelWattage)
	c.PanelEfficiency = finite(c.PanelEfficiency)
	c.PanelDegradationRate = finite(c.PanelDegradationRate)
	c.InverterEfficiency = finite(c.InverterEfficiency)
	c.CablingLoss = finite(c.CablingLoss)
	c.CostPerPanel = finite(c.CostPerPanel)
	c.InverterCost = finite(c.InverterCost)
	c.BatteryCost = finite(c.BatteryCost)
	c.BatteryCapacityKWH = finite(c.BatteryCapacityKWH)
	c.BatteryDepthOfDischarge = finite(c.BatteryDepthOfDischarge)
	c.BatteryPowerKW = finite(c.BatteryPowerKW)
	c.MountingCost = finite(c.MountingCost)
	c.MonitoringCost = finite(c.MonitoringCost)
	c.LaborCost = finite(c.LaborCost)
	c.OtherFees = finite(c.OtherFees)
	c.LoanAmount = finite(c.LoanAmount)
	c.LoanTermYears = finite(c.LoanTermYears)
	c.LoanInterestRate = finite(c.LoanInterestRate)
	c.CreditScore = finite(c.CreditScore)
	return c
}

// MigrateConfig migrates a config decoded from an older payload to the
// current version. It returns the migrated config, a boolean indicating if
// any field changed, and an error if migration failed.
func MigrateConfig(c SolarConfig, currentVersion int) (SolarConfig, bool, error) {
	if currentVersion >= CurrentConfigVersion {
		return c, false, nil
	}

	migrated := false
	// Loop through versions to apply migrations sequentially
	for version := currentVersion + 1; version <= CurrentConfigVersion; version++ {
		switch version {
		case 1:
			// version 1: initial
		case 2:
			// version 2: federalTaxCredit moved from a 0-1 fraction to a
			// 0-100 percent
			if c.FederalTaxCredit > 0 && c.FederalTaxCredit <= 1 {
				c.FederalTaxCredit *= 100
				migrated = true
			}
		case 3:
			// version 3: add batteryPowerKW and monitoringCost
			if c.BatteryPowerKW == 0 {
				c.BatteryPowerKW = 5
				migrated = true
			}
			if c.MonitoringCost == 0 {
				c.MonitoringCost = 300
				migrated = true
			}
		default:
			return c, false, fmt.Errorf("unknown config version: %d", version)
		}
	}

	c.Version = CurrentConfigVersion
	return c, migrated, nil
}
