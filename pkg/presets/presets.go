// Package presets ships regional starting points for the simulation. A
// preset only covers the assumptions that actually vary by location, solar
// resource and utility pricing, and leaves the rest of the config alone.
package presets

import (
	"github.com/heliosim/heliosim/pkg/types"
)

// Preset is a named bundle of location-dependent assumptions.
type Preset struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	PeakSunHours         float64 `json:"peakSunHours"`
	UtilityRate          float64 `json:"utilityRate"`          // $/kWh
	NetMeteringSellRate  float64 `json:"netMeteringSellRate"`  // $/kWh
	UtilityInflationRate float64 `json:"utilityInflationRate"` // %/year
}

// Figures are rounded from NREL insolation maps and recent EIA residential
// rate averages for each region.
var presets = []Preset{
	{
		ID:                   "southwest",
		Name:                 "Desert Southwest (Phoenix, Las Vegas)",
		PeakSunHours:         6.5,
		UtilityRate:          0.14,
		NetMeteringSellRate:  0.06,
		UtilityInflationRate: 3,
	},
	{
		ID:                   "california",
		Name:                 "California (Los Angeles, San Diego)",
		PeakSunHours:         5.8,
		UtilityRate:          0.3,
		NetMeteringSellRate:  0.05,
		UtilityInflationRate: 4,
	},
	{
		ID:                   "texas",
		Name:                 "Texas (Austin, Dallas)",
		PeakSunHours:         5.4,
		UtilityRate:          0.15,
		NetMeteringSellRate:  0.09,
		UtilityInflationRate: 3,
	},
	{
		ID:                   "southeast",
		Name:                 "Southeast (Atlanta, Orlando)",
		PeakSunHours:         5,
		UtilityRate:          0.13,
		NetMeteringSellRate:  0.07,
		UtilityInflationRate: 2.5,
	},
	{
		ID:                   "northeast",
		Name:                 "Northeast (Boston, New York)",
		PeakSunHours:         4.2,
		UtilityRate:          0.28,
		NetMeteringSellRate:  0.22,
		UtilityInflationRate: 3.5,
	},
	{
		ID:                   "midwest",
		Name:                 "Midwest (Chicago, Minneapolis)",
		PeakSunHours:         4,
		UtilityRate:          0.16,
		NetMeteringSellRate:  0.07,
		UtilityInflationRate: 2.5,
	},
	{
		ID:                   "pacific-northwest",
		Name:                 "Pacific Northwest (Seattle, Portland)",
		PeakSunHours:         3.5,
		UtilityRate:          0.11,
		NetMeteringSellRate:  0.08,
		UtilityInflationRate: 2,
	},
}

// All returns every preset in display order.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Get looks a preset up by ID.
func Get(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply overlays the preset's assumptions onto the given config.
func Apply(p Preset, cfg types.SolarConfig) types.SolarConfig {
	cfg.PeakSunHours = p.PeakSunHours
	cfg.UtilityRate = p.UtilityRate
	cfg.NetMeteringSellRate = p.NetMeteringSellRate
	cfg.UtilityInflationRate = p.UtilityInflationRate
	return cfg
}
