package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/uygun9544/slipperduel/internal/api/response"
	"github.com/uygun9544/slipperduel/internal/dependencies/clock"
	"github.com/uygun9544/slipperduel/internal/services/leaderboard"
	"github.com/uygun9544/slipperduel/internal/services/match"
	"github.com/uygun9544/slipperduel/internal/services/training"
)

// AdminTokenHeader carries the shared secret gating training-config
// writes.
const AdminTokenHeader = "X-Admin-Token"

type handlers struct {
	matchServer *match.Server
	leaderboard *leaderboard.Service
	training    *training.Service
	clock       clock.Clock
	storageMode string
	adminToken  string
}

// health reports the presence snapshot. Counts come straight from the
// live match-server tables so they can never drift from reality.
func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	stats := h.matchServer.Snapshot()

	response.JSON(w, http.StatusOK, map[string]any{
		"ok":               true,
		"service":          "slipperduel-matchmaking",
		"queueSize":        stats.QueueSize,
		"activeRooms":      stats.ActiveRooms,
		"connectedClients": stats.ConnectedSessions,
		"trackedPlayers":   stats.TrackedPlayers,
		"storage":          h.storageMode,
		"trainingBot":      h.training.Get(),
		"timestamp":        h.clock.Now().UTC(),
	})
}

// leaders returns the ranked balance list, limit clamped in the service.
func (h *handlers) leaders(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"rows": h.leaderboard.Top(limit),
	})
}

// getTrainingConfig serves the current bot tuning.
func (h *handlers) getTrainingConfig(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"config": h.training.Get(),
	})
}

// trainingConfigUpdate is a partial update; absent fields keep their
// current value.
type trainingConfigUpdate struct {
	ReactionMinMs *int     `json:"reactionMinMs"`
	ReactionMaxMs *int     `json:"reactionMaxMs"`
	MissChance    *float64 `json:"missChance"`
}

// updateTrainingConfig applies an admin tuning change.
func (h *handlers) updateTrainingConfig(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		response.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var update trainingConfigUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid body")
		return
	}

	cfg := h.training.Get()
	if update.ReactionMinMs != nil {
		cfg.ReactionMinMs = *update.ReactionMinMs
	}
	if update.ReactionMaxMs != nil {
		cfg.ReactionMaxMs = *update.ReactionMaxMs
	}
	if update.MissChance != nil {
		cfg.MissChance = *update.MissChance
	}

	applied := h.training.Update(cfg)
	response.JSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"config": applied,
	})
}

func (h *handlers) authorized(r *http.Request) bool {
	if h.adminToken == "" {
		// No token configured means writes are disabled entirely.
		return false
	}
	provided := r.Header.Get(AdminTokenHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.adminToken)) == 1
}
