package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/heliosim/heliosim/pkg/types"
)

var (
	// ErrInvalidPayload means the bytes are not a readable export file.
	ErrInvalidPayload = errors.New("not a valid export file")
	// ErrMissingConfig means the file parsed but has no config section.
	ErrMissingConfig = errors.New("export file has no config section")
)

// ImportResult is what an accepted export file produced. AppliedKeys and
// SkippedKeys report, per incoming config key, whether it matched the known
// schema; Migrated flags a file written by an older release.
type ImportResult struct {
	Config      types.SolarConfig
	Simulation  types.SimulationInputs
	AppliedKeys []string
	SkippedKeys []string
	Migrated    bool
}

// knownConfigKeys is every JSON key the config schema understands, derived
// from the struct tags so the two can never drift apart.
var knownConfigKeys = func() map[string]struct{} {
	data, err := json.Marshal(types.SolarConfig{})
	if err != nil {
		panic(fmt.Sprintf("marshaling empty config: %s", err))
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		panic(fmt.Sprintf("unmarshaling empty config: %s", err))
	}
	keys := make(map[string]struct{}, len(fields))
	for key := range fields {
		keys[key] = struct{}{}
	}
	return keys
}()

// ParseExport reads an export file back into usable inputs. Recognized
// config keys are overlaid onto the current defaults, unrecognized keys are
// skipped and reported, and configs from older releases are migrated
// forward. Any embedded snapshot is ignored; callers rebuild it so an
// imported file can never show numbers the engine would not produce.
func ParseExport(data []byte) (ImportResult, error) {
	var raw struct {
		Config     map[string]json.RawMessage `json:"config"`
		Simulation json.RawMessage            `json:"simulation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
	if raw.Config == nil {
		return ImportResult{}, ErrMissingConfig
	}

	applied := make([]string, 0, len(raw.Config))
	var skipped []string
	filtered := make(map[string]json.RawMessage, len(raw.Config))
	for key, value := range raw.Config {
		if _, ok := knownConfigKeys[key]; ok {
			filtered[key] = value
			applied = append(applied, key)
		} else {
			skipped = append(skipped, key)
		}
	}
	sort.Strings(applied)
	sort.Strings(skipped)

	cfg := types.DefaultConfig()
	merged, err := json.Marshal(filtered)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
	if err := json.Unmarshal(merged, &cfg); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
	// Files that predate the version field are all version 1.
	if _, ok := filtered["version"]; !ok {
		cfg.Version = 1
	}

	fromVersion := cfg.Version
	cfg, _, err = types.MigrateConfig(cfg, fromVersion)
	if err != nil {
		return ImportResult{}, fmt.Errorf("migrating imported config: %w", err)
	}

	sim := types.DefaultSimulationInputs()
	if len(raw.Simulation) > 0 {
		if err := json.Unmarshal(raw.Simulation, &sim); err != nil {
			return ImportResult{}, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
		}
		sim = types.SanitizeSimulationInputs(sim)
	}

	return ImportResult{
		Config:      cfg,
		Simulation:  sim,
		AppliedKeys: applied,
		SkippedKeys: skipped,
		Migrated:    fromVersion < types.CurrentConfigVersion,
	}, nil
}
