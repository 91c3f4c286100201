package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heliosim/heliosim/pkg/engine"
	"github.com/heliosim/heliosim/pkg/log"
	"github.com/heliosim/heliosim/pkg/types"
)

type snapshotRequest struct {
	Config     *types.SolarConfig      `json:"config"`
	Simulation *types.SimulationInputs `json:"simulation"`
}

// configValidationError returns the first problem with cfg's value ranges,
// or an empty string. Non-finite values pass here and are zeroed by the
// engine's sanitization instead.
func configValidationError(cfg types.SolarConfig) string {
	if cfg.UtilityRate < 0 {
		return "utility rate cannot be negative"
	}
	if cfg.FederalTaxCredit < 0 || cfg.FederalTaxCredit > 100 {
		return "federal tax credit must be between 0 and 100"
	}
	if cfg.PanelCount < 0 {
		return "panel count cannot be negative"
	}
	if cfg.PanelWattage < 0 {
		return "panel wattage cannot be negative"
	}
	if cfg.PanelEfficiency < 0 || cfg.PanelEfficiency > 100 {
		return "panel efficiency must be between 0 and 100"
	}
	if cfg.PanelDegradationRate < 0 || cfg.PanelDegradationRate > 100 {
		return "panel degradation rate must be between 0 and 100"
	}
	if cfg.InverterEfficiency < 0 || cfg.InverterEfficiency > 100 {
		return "inverter efficiency must be between 0 and 100"
	}
	if cfg.CablingLoss < 0 || cfg.CablingLoss > 100 {
		return "cabling loss must be between 0 and 100"
	}
	if cfg.BatteryDepthOfDischarge < 0 || cfg.BatteryDepthOfDischarge > 100 {
		return "battery depth of discharge must be between 0 and 100"
	}
	return ""
}

// decodeSnapshotRequest reads the body shared by the snapshot and context
// endpoints. A missing simulation falls back to the defaults; a missing
// config or an out-of-range value is the caller's error.
func decodeSnapshotRequest(w http.ResponseWriter, r *http.Request) (types.SolarConfig, types.SimulationInputs, bool) {
	ctx := r.Context()

	var req snapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode snapshot request", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return types.SolarConfig{}, types.SimulationInputs{}, false
	}
	if req.Config == nil {
		writeJSONError(w, "config is required", http.StatusBadRequest)
		return types.SolarConfig{}, types.SimulationInputs{}, false
	}
	if msg := configValidationError(*req.Config); msg != "" {
		writeJSONError(w, msg, http.StatusBadRequest)
		return types.SolarConfig{}, types.SimulationInputs{}, false
	}

	sim := types.DefaultSimulationInputs()
	if req.Simulation != nil {
		sim = *req.Simulation
	}
	return *req.Config, sim, true
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	cfg, sim, ok := decodeSnapshotRequest(w, r)
	if !ok {
		return
	}

	snap := engine.BuildSnapshot(cfg, sim)

	// results vary with every body, there is nothing to cache
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, snap, http.StatusOK)
}

func (s *Server) handleContext(w http.ResponseWriter, r *http.Request) {
	cfg, sim, ok := decodeSnapshotRequest(w, r)
	if !ok {
		return
	}

	text := engine.ModelContext(engine.BuildSnapshot(cfg, sim))

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		panic(http.ErrAbortHandler)
	}
}
