package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliosim/heliosim/pkg/export"
	"github.com/heliosim/heliosim/pkg/types"
)

func TestHandleExport(t *testing.T) {
	server := &Server{}

	t.Run("Inputs Only", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{"config": types.DefaultConfig()})
		req := httptest.NewRequest("POST", "/api/export", bytes.NewReader(body))
		w := httptest.NewRecorder()
		http.HandlerFunc(server.handleExport).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var env export.Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, export.KindInputs, env.Kind)
		assert.NotEmpty(t, env.AppVersion)
		assert.Nil(t, env.Snapshot)
	})

	t.Run("With Snapshot", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"kind":   "snapshot",
			"config": types.DefaultConfig(),
		})
		req := httptest.NewRequest("POST", "/api/export", bytes.NewReader(body))
		w := httptest.NewRecorder()
		http.HandlerFunc(server.handleExport).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var env export.Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, export.KindSnapshot, env.Kind)
		require.NotNil(t, env.Snapshot)
		assert.Len(t, env.Snapshot.Projection, types.ProjectionYears)
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"kind":   "spreadsheet",
			"config": types.DefaultConfig(),
		})
		req := httptest.NewRequest("POST", "/api/export", bytes.NewReader(body))
		w := httptest.NewRecorder()
		http.HandlerFunc(server.handleExport).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "spreadsheet")
	})

	t.Run("Missing Config", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/export", strings.NewReader("{}"))
		w := httptest.NewRecorder()
		http.HandlerFunc(server.handleExport).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleImport(t *testing.T) {
	server := &Server{}

	t.Run("Round Trip From Export", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.PanelCount = 28
		body, _ := json.Marshal(map[string]any{"config": cfg})
		req := httptest.NewRequest("POST", "/api/export", bytes.NewReader(body))
		w := httptest.NewRecorder()
		http.HandlerFunc(server.handleExport).ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest("POST", "/api/import", bytes.NewReader(w.Body.Bytes()))
		w = httptest.NewRecorder()
		http.HandlerFunc(server.handleImport).ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp importResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, cfg, resp.Config)
		assert.False(t, resp.Migrated)
		assert.Empty(t, resp.SkippedKeys)
		assert.Len(t, resp.Snapshot.Projection, types.ProjectionYears)
	})

	t.Run("Legacy Unversioned File", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/import",
			strings.NewReader(`{"config": {"federalTaxCredit": 0.25, "futureKnob": 7}}`))
		w := httptest.NewRecorder()
		http.HandlerFunc(server.handleImport).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp importResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Migrated)
		assert.Equal(t, 25.0, resp.Config.FederalTaxCredit)
		assert.Equal(t, []string{"futureKnob"}, resp.SkippedKeys)
	})

	t.Run("Missing Config", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/import", strings.NewReader(`{"kind": "inputs"}`))
		w := httptest.NewRecorder()
		http.HandlerFunc(server.handleImport).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "config")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/import", strings.NewReader("{nope"))
		w := httptest.NewRecorder()
		http.HandlerFunc(server.handleImport).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
