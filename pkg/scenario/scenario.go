// Package scenario loads YAML descriptions of a simulation run for the CLI.
// A scenario names an optional regional preset plus any config or simulation
// overrides; everything it does not mention stays at the defaults.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heliosim/heliosim/pkg/presets"
	"github.com/heliosim/heliosim/pkg/types"
)

// Scenario is a fully resolved run: defaults, then preset, then overrides.
type Scenario struct {
	Name       string
	Config     types.SolarConfig
	Simulation types.SimulationInputs
}

// Load reads and resolves a scenario file. An empty name falls back to the
// file name.
func Load(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	sc, err := Parse(raw)
	if err != nil {
		return Scenario{}, err
	}
	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sc, nil
}

// Parse resolves scenario YAML. Preset values apply first so explicit
// config keys win over them.
func Parse(raw []byte) (Scenario, error) {
	var file struct {
		Name       string    `yaml:"name"`
		Preset     string    `yaml:"preset"`
		Config     yaml.Node `yaml:"config"`
		Simulation yaml.Node `yaml:"simulation"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}

	sc := Scenario{
		Name:       file.Name,
		Config:     types.DefaultConfig(),
		Simulation: types.DefaultSimulationInputs(),
	}
	if file.Preset != "" {
		p, ok := presets.Get(file.Preset)
		if !ok {
			return Scenario{}, fmt.Errorf("unknown preset %q", file.Preset)
		}
		sc.Config = presets.Apply(p, sc.Config)
	}
	if !file.Config.IsZero() {
		if err := file.Config.Decode(&sc.Config); err != nil {
			return Scenario{}, fmt.Errorf("parsing scenario config: %w", err)
		}
	}
	if !file.Simulation.IsZero() {
		if err := file.Simulation.Decode(&sc.Simulation); err != nil {
			return Scenario{}, fmt.Errorf("parsing scenario simulation: %w", err)
		}
	}
	return sc, nil
}
