package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong from the peer
	pongWait = 60 * time.Second

	// Ping interval; must be under pongWait
	pingPeriod = 54 * time.Second

	// Largest inbound frame the protocol ever needs
	maxMessageSize = 4096

	// Buffer size for outgoing messages
	sendBufferSize = 256
)

// client is one connected socket. It implements match.Sender: sends are
// buffered and never block the dispatcher; a client that cannot drain its
// buffer loses messages rather than stalling the rest of the server.
type client struct {
	conn      *websocket.Conn
	logger    *slog.Logger
	send      chan []byte
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, logger *slog.Logger) *client {
	return &client{
		conn:   conn,
		logger: logger,
		send:   make(chan []byte, sendBufferSize),
	}
}

// Send marshals and queues one outbound message.
func (c *client) Send(msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("outbound message marshal failed", slog.String("error", err.Error()))
		return
	}

	select {
	case c.send <- data:
	default:
		c.logger.Warn("outbound message dropped - client buffer full")
	}
}

// close shuts the send channel exactly once, ending the write pump.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// readPump consumes inbound frames until the connection dies, handing
// each frame to handle in arrival order.
func (c *client) readPump(handle func(raw []byte)) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket read error", slog.String("error", err.Error()))
			}
			return
		}
		handle(data)
	}
}

// writePump drains the send buffer and keeps the connection alive with
// pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
