package discord

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus is the /healthz response body.
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	CatalogItems     int       `json:"catalog_items"`
	CatalogLoadedAt  time.Time `json:"catalog_loaded_at,omitempty"`
}

var (
	startTime       = time.Now()
	commandCounter  int64
	lastCommandTime atomic.Pointer[time.Time]
)

// RecordCommand notes that a command interaction arrived, for health
// reporting.
func RecordCommand() {
	atomic.AddInt64(&commandCounter, 1)
	now := time.Now()
	lastCommandTime.Store(&now)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	connected := s.bot.Session != nil && s.bot.Session.DataReady
	catalog := s.bot.Loot.Current()

	status := "healthy"
	if !connected || catalog == nil {
		status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	health := HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: atomic.LoadInt64(&commandCounter),
		CatalogItems:     catalog.Len(),
	}
	if last := lastCommandTime.Load(); last != nil {
		health.LastCommandTime = *last
	}
	if catalog != nil {
		health.CatalogLoadedAt = catalog.LoadedAt
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Error("Failed to encode health response", "error", err)
	}
}
