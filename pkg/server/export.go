package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heliosim/heliosim/pkg/engine"
	"github.com/heliosim/heliosim/pkg/export"
	"github.com/heliosim/heliosim/pkg/log"
	"github.com/heliosim/heliosim/pkg/types"
)

type exportRequest struct {
	Kind       export.Kind             `json:"kind"`
	Config     *types.SolarConfig      `json:"config"`
	Simulation *types.SimulationInputs `json:"simulation"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode export request", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Config == nil {
		writeJSONError(w, "config is required", http.StatusBadRequest)
		return
	}
	sim := types.DefaultSimulationInputs()
	if req.Simulation != nil {
		sim = *req.Simulation
	}

	var env export.Envelope
	switch req.Kind {
	case export.KindSnapshot:
		env = export.BuildSnapshotExport(*req.Config, sim, engine.BuildSnapshot(*req.Config, sim))
	case export.KindInputs, "":
		env = export.BuildInputsExport(*req.Config, sim)
	default:
		writeJSONError(w, fmt.Sprintf("unknown export kind %q", req.Kind), http.StatusBadRequest)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, env, http.StatusOK)
}

type importResponse struct {
	Config      types.SolarConfig      `json:"config"`
	Simulation  types.SimulationInputs `json:"simulation"`
	AppliedKeys []string               `json:"appliedKeys"`
	SkippedKeys []string               `json:"skippedKeys"`
	Migrated    bool                   `json:"migrated"`
	Snapshot    types.ModelSnapshot    `json:"snapshot"`
}

// handleImport accepts a previously exported file as the request body and
// returns the resolved inputs plus a freshly computed snapshot, so clients
// never trust numbers embedded in the file itself.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to read import body", slog.Any("error", err))
		writeJSONError(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	res, err := export.ParseExport(body)
	if err != nil {
		if errors.Is(err, export.ErrInvalidPayload) || errors.Is(err, export.ErrMissingConfig) {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to import file", slog.Any("error", err))
		writeJSONError(w, "failed to import file", http.StatusBadRequest)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, importResponse{
		Config:      res.Config,
		Simulation:  res.Simulation,
		AppliedKeys: res.AppliedKeys,
		SkippedKeys: res.SkippedKeys,
		Migrated:    res.Migrated,
		Snapshot:    engine.BuildSnapshot(res.Config, res.Simulation),
	}, http.StatusOK)
}
