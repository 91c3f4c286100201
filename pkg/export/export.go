// Package export implements the portable JSON envelope used to move a
// simulation between installs: either the inputs alone or the inputs plus
// the snapshot computed from them. Imports are tolerant by construction,
// unknown config keys are skipped and reported rather than rejected, and
// files written by older releases are migrated on the way in.
package export

import (
	"time"

	"github.com/heliosim/heliosim/pkg/common"
	"github.com/heliosim/heliosim/pkg/types"
)

// Kind says what an envelope carries.
type Kind string

const (
	// KindInputs is a config-and-simulation-only export.
	KindInputs Kind = "inputs"
	// KindSnapshot additionally embeds the computed snapshot so the file is
	// readable without running the engine.
	KindSnapshot Kind = "snapshot"
)

// Envelope is the on-disk export format. Snapshot and Simulation are
// pointers so an inputs-only file stays small.
type Envelope struct {
	Kind       Kind                    `json:"kind"`
	AppVersion string                  `json:"appVersion"`
	ExportedAt time.Time               `json:"exportedAt"`
	Config     types.SolarConfig       `json:"config"`
	Simulation *types.SimulationInputs `json:"simulation,omitempty"`
	Snapshot   *types.ModelSnapshot    `json:"snapshot,omitempty"`
}

// BuildInputsExport wraps the given inputs in a stamped envelope.
func BuildInputsExport(cfg types.SolarConfig, sim types.SimulationInputs) Envelope {
	return Envelope{
		Kind:       KindInputs,
		AppVersion: common.Version(),
		ExportedAt: time.Now().UTC(),
		Config:     cfg,
		Simulation: &sim,
	}
}

// BuildSnapshotExport wraps the inputs plus their computed snapshot.
func BuildSnapshotExport(cfg types.SolarConfig, sim types.SimulationInputs, snap types.ModelSnapshot) Envelope {
	env := BuildInputsExport(cfg, sim)
	env.Kind = KindSnapshot
	env.Snapshot = &snap
	return env
}
