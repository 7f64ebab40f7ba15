package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/uygun9544/slipperduel/internal/api/middleware"
	"github.com/uygun9544/slipperduel/internal/dependencies/clock"
	"github.com/uygun9544/slipperduel/internal/services/leaderboard"
	"github.com/uygun9544/slipperduel/internal/services/match"
	"github.com/uygun9544/slipperduel/internal/services/training"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Logger       *slog.Logger
	MatchServer  *match.Server
	Leaderboard  *leaderboard.Service
	Training     *training.Service
	Clock        clock.Clock
	StorageMode  string
	AdminToken   string
	GameEndpoint http.Handler
}

// NewRouter wires the WebSocket game endpoint and the HTTP side-channel.
// The game socket lives at the root path, exactly where the original
// mini-app client dials; plain GETs on the root answer with a liveness
// string instead.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	h := &handlers{
		matchServer: cfg.MatchServer,
		leaderboard: cfg.Leaderboard,
		training:    cfg.Training,
		clock:       cfg.Clock,
		storageMode: cfg.StorageMode,
		adminToken:  cfg.AdminToken,
	}

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard", h.leaders).Methods(http.MethodGet)
	r.HandleFunc("/leaders", h.leaders).Methods(http.MethodGet)
	r.HandleFunc("/training-config", h.getTrainingConfig).Methods(http.MethodGet)
	r.HandleFunc("/training-config", h.updateTrainingConfig).Methods(http.MethodPost)

	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if websocket.IsWebSocketUpgrade(req) {
			cfg.GameEndpoint.ServeHTTP(w, req)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Matchmaking server is running"))
	})

	return r
}
