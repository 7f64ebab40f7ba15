// Package ws exposes the game protocol over a WebSocket endpoint. Each
// connection gets a session in the match server; frames are dispatched
// synchronously from the read loop so one session's messages are handled
// in arrival order.
package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/uygun9544/slipperduel/internal/services/match"
)

// Handler upgrades HTTP requests and bridges sockets to the match server.
type Handler struct {
	server   *match.Server
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates the WebSocket endpoint handler.
func NewHandler(server *match.Server, logger *slog.Logger) *Handler {
	return &Handler{
		server: server,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The game client is a browser mini-app served from a
			// different origin than this server.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP handles one WebSocket connection for its whole lifetime.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := newClient(conn, h.logger)
	go c.writePump()

	sessionID := h.server.Register(c)

	c.readPump(func(raw []byte) {
		h.server.HandleMessage(sessionID, raw)
	})

	// Connection is gone: tear down queue membership, any room, and the
	// session itself before letting the write pump finish.
	h.server.Disconnect(sessionID)
	c.close()
}
