package server

import (
	"encoding/json"
	"net/http"
	"time"

	"shelf/internal/version"
)

// handleItems serves the fixed item collection as a JSON array of strings.
// The body is pre-encoded at startup, so responses are byte-identical
// regardless of call count.
func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(s.itemsBody)
}

// handleHealth provides a liveness endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         "ok",
		"version":        version.Info(),
		"items":          s.collection.Len(),
		"uptime_seconds": int64(time.Since(s.startTime).Seconds()),
	})
}
