package server

import (
	"net/http"

	"github.com/heliosim/heliosim/pkg/presets"
)

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, presets.All(), http.StatusOK)
}
