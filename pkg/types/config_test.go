package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, c.Version)

	// percentages are stored as 0-100 values
	for name, pct := range map[string]float64{
		"utilityInflationRate":    c.UtilityInflationRate,
		"federalTaxCredit":        c.FederalTaxCredit,
		"panelEfficiency":         c.PanelEfficiency,
		"panelDegradationRate":    c.PanelDegradationRate,
		"inverterEfficiency":      c.InverterEfficiency,
		"cablingLoss":             c.CablingLoss,
		"batteryDepthOfDischarge": c.BatteryDepthOfDischarge,
	} {
		assert.GreaterOrEqual(t, pct, 0.0, name)
		assert.LessOrEqual(t, pct, 100.0, name)
	}

	assert.Positive(t, c.PanelCount)
	assert.Positive(t, c.PanelWattage)
	assert.Positive(t, c.UtilityRate)
	assert.Positive(t, c.MonthlyUsageKWH)
}

func TestSanitizeConfig(t *testing.T) {
	t.Run("Non-Finite Values Coerced", func(t *testing.T) {
		c := DefaultConfig()
		c.UtilityRate = math.NaN()
		c.PeakSunHours = math.Inf(1)
		c.PanelCount = math.Inf(-1)
		c.LoanAmount = math.NaN()

		got := SanitizeConfig(c)
		assert.Zero(t, got.UtilityRate)
		assert.Zero(t, got.PeakSunHours)
		assert.Zero(t, got.PanelCount)
		assert.Zero(t, got.LoanAmount)
	})

	t.Run("Finite Values Preserved", func(t *testing.T) {
		c := DefaultConfig()
		got := SanitizeConfig(c)
		assert.Equal(t, c, got)
	})

	t.Run("Negative Values Pass Through", func(t *testing.T) {
		// sanitization is only about finiteness, not about validation
		c := DefaultConfig()
		c.UtilityRate = -0.05
		got := SanitizeConfig(c)
		assert.Equal(t, -0.05, got.UtilityRate)
	})
}

func TestMigrateConfig(t *testing.T) {
	t.Run("v1 to current: fractional tax credit", func(t *testing.T) {
		old := DefaultConfig()
		old.FederalTaxCredit = 0.3 // stored as a fraction before v2
		c, changed, err := MigrateConfig(old, 1)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 30.0, c.FederalTaxCredit)
		assert.Equal(t, CurrentConfigVersion, c.Version)
	})

	t.Run("v1 to current: percent tax credit untouched", func(t *testing.T) {
		old := DefaultConfig()
		old.FederalTaxCredit = 30
		old.BatteryPowerKW = 7.6
		old.MonitoringCost = 250
		c, changed, err := MigrateConfig(old, 1)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 30.0, c.FederalTaxCredit)
		assert.Equal(t, 7.6, c.BatteryPowerKW)
	})

	t.Run("v2 to v3: fill battery power and monitoring", func(t *testing.T) {
		old := DefaultConfig()
		old.BatteryPowerKW = 0
		old.MonitoringCost = 0
		c, changed, err := MigrateConfig(old, 2)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 5.0, c.BatteryPowerKW)
		assert.Equal(t, 300.0, c.MonitoringCost)
	})

	t.Run("no change: current version", func(t *testing.T) {
		current := DefaultConfig()
		c, changed, err := MigrateConfig(current, CurrentConfigVersion)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, current, c)
	})
}

func TestSanitizeSimulationInputs(t *testing.T) {
	s := SimulationInputs{
		CriticalLoadWatts:    math.NaN(),
		CheapestMonthlyBill:  85,
		ExpensiveMonthlyBill: math.Inf(1),
	}
	got := SanitizeSimulationInputs(s)
	assert.Zero(t, got.CriticalLoadWatts)
	assert.Equal(t, 85.0, got.CheapestMonthlyBill)
	assert.Zero(t, got.ExpensiveMonthlyBill)
}
