package server

import (
	"net/http"

	"github.com/heliosim/heliosim/pkg/common"
	"github.com/heliosim/heliosim/pkg/types"
)

type defaultsResponse struct {
	Config        types.SolarConfig      `json:"config"`
	Simulation    types.SimulationInputs `json:"simulation"`
	ConfigVersion int                    `json:"configVersion"`
	AppVersion    string                 `json:"appVersion"`
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	// defaults only change with a release
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, defaultsResponse{
		Config:        types.DefaultConfig(),
		Simulation:    types.DefaultSimulationInputs(),
		ConfigVersion: types.CurrentConfigVersion,
		AppVersion:    common.Version(),
	}, http.StatusOK)
}
