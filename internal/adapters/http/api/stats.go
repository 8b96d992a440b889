// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// StatsProvider exposes the service's operational counters: snapshot
// record count, last rebuild time, refresh interval and aging status.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler serves the snapshot and refresh statistics endpoint.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a stats handler backed by the given provider.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests with a flat JSON object.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	stats := h.statsProvider.GetStats()
	_ = json.NewEncoder(w).Encode(stats)
}
