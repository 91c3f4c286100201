package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliosim/heliosim/pkg/presets"
	"github.com/heliosim/heliosim/pkg/types"
)

func TestParse(t *testing.T) {
	t.Run("Empty Document Is All Defaults", func(t *testing.T) {
		sc, err := Parse([]byte("name: baseline\n"))
		require.NoError(t, err)

		assert.Equal(t, "baseline", sc.Name)
		assert.Equal(t, types.DefaultConfig(), sc.Config)
		assert.Equal(t, types.DefaultSimulationInputs(), sc.Simulation)
	})

	t.Run("Overrides Apply On Top Of Defaults", func(t *testing.T) {
		sc, err := Parse([]byte(`
name: big array
config:
  panelCount: 40
  utilityRate: 0.21
simulation:
  criticalLoadWatts: 1500
`))
		require.NoError(t, err)

		assert.Equal(t, 40.0, sc.Config.PanelCount)
		assert.Equal(t, 0.21, sc.Config.UtilityRate)
		assert.Equal(t, 1500.0, sc.Simulation.CriticalLoadWatts)
		// untouched keys keep their defaults
		assert.Equal(t, types.DefaultConfig().PanelWattage, sc.Config.PanelWattage)
		assert.Equal(t, types.DefaultSimulationInputs().ExpensiveMonthlyBill, sc.Simulation.ExpensiveMonthlyBill)
	})

	t.Run("Preset Applies Before Overrides", func(t *testing.T) {
		sc, err := Parse([]byte(`
preset: southwest
config:
  utilityRate: 0.2
`))
		require.NoError(t, err)

		sw, ok := presets.Get("southwest")
		require.True(t, ok)
		// sun hours come from the preset, the rate from the override
		assert.Equal(t, sw.PeakSunHours, sc.Config.PeakSunHours)
		assert.Equal(t, 0.2, sc.Config.UtilityRate)
	})

	t.Run("Unknown Preset", func(t *testing.T) {
		_, err := Parse([]byte("preset: atlantis\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "atlantis")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := Parse([]byte("config: [not\n  a mapping"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("Name Falls Back To File Name", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "winter-outage.yaml")
		require.NoError(t, os.WriteFile(path, []byte("config:\n  batteryCapacityKWH: 20\n"), 0o600))

		sc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "winter-outage", sc.Name)
		assert.Equal(t, 20.0, sc.Config.BatteryCapacityKWH)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
