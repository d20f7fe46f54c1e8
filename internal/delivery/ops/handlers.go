package ops

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/tradepulse/tradepulse/internal/domain"
)

// handleHealth reports liveness plus whether a view has been published
// and when it was last synchronized
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	model, viewReady := s.store.Current()

	response := map[string]interface{}{
		"status":     "healthy",
		"service":    "tradepulse-ops",
		"view_ready": viewReady,
		"epoch":      s.store.Epoch(),
	}
	if viewReady {
		response["last_synced_at"] = model.FetchedAt.Format(time.RFC3339)
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleSyncTrigger forces a sync cycle outside the regular cadence
func (s *Server) handleSyncTrigger(w http.ResponseWriter, r *http.Request) {
	if err := s.refresh.RefreshNow(r.Context()); err != nil {
		s.writeError(w, http.StatusBadGateway, "sync failed: "+err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"epoch":  s.store.Epoch(),
	})
}

// handleRecentHistory returns the sampled equity curve. The window is
// set with ?hours=N, defaulting to 24 and capped at 30 days.
func (s *Server) handleRecentHistory(w http.ResponseWriter, r *http.Request) {
	hours := 24
	if v := r.URL.Query().Get("hours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, http.StatusBadRequest, "hours must be a positive integer")
			return
		}
		hours = n
	}
	if hours > 720 {
		hours = 720
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	points, err := s.history.ListSince(r.Context(), since)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list equity history")
		s.writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	if points == nil {
		points = []*domain.EquityPoint{}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"points": points,
		"count":  len(points),
	})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
