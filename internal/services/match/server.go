// Package match is the coordination core: the connection registry, the
// matchmaking queue, the room state machine and balance settlement. Every
// mutation of its tables runs under one lock, the Go rendition of the
// single-threaded event loop this protocol assumes, so handlers never race
// and per-session message order is preserved by the transport's read loop.
package match

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/uygun9544/slipperduel/internal/dependencies/random"
	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/protocol"
	"github.com/uygun9544/slipperduel/internal/services/balance"
	"github.com/uygun9544/slipperduel/internal/services/planner"
)

// roomTokenBytes sizes the random room id (hex-encoded).
const roomTokenBytes = 4

// session pairs the registry-owned session state with its transport.
type session struct {
	model.Session
	sender Sender
}

// Server owns the session registry, the waiting queue and the room table.
type Server struct {
	mu       sync.Mutex
	logger   *slog.Logger
	random   random.Random
	planner  *planner.Service
	balances *balance.Service

	sessions map[model.SessionID]*session
	queue    *queue
	rooms    map[model.RoomID]*model.Room
}

// NewServer creates the match server.
func NewServer(rnd random.Random, plan *planner.Service, balances *balance.Service, logger *slog.Logger) *Server {
	return &Server{
		logger:   logger,
		random:   rnd,
		planner:  plan,
		balances: balances,
		sessions: make(map[model.SessionID]*session),
		queue:    newQueue(),
		rooms:    make(map[model.RoomID]*model.Room),
	}
}

// Register creates a session for a fresh connection and acknowledges it.
func (s *Server) Register(sender Sender) model.SessionID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := model.SessionID(uuid.NewString())
	s.sessions[id] = &session{
		Session: model.Session{ID: id},
		sender:  sender,
	}

	sender.Send(protocol.NewConnected())
	s.logger.Info("session registered", slog.String("session_id", string(id)))
	return id
}

// Disconnect tears down a session: queue membership, any room it occupies
// (notifying the peer) and finally the registry entry.
func (s *Server) Disconnect(id model.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return
	}

	s.queue.Remove(id)

	if sess.RoomID != "" {
		s.teardownRoomLocked(sess.RoomID, id)
	}
	s.purgeTombstonesLocked(id)

	delete(s.sessions, id)
	s.logger.Info("session removed", slog.String("session_id", string(id)))
}

// Stats is the read-only presence snapshot for the health endpoint.
type Stats struct {
	QueueSize         int
	ActiveRooms       int
	ConnectedSessions int
	TrackedPlayers    int
}

// Snapshot derives the presence counts from the live tables.
func (s *Server) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := 0
	for _, room := range s.rooms {
		if room.State != model.RoomStateSettled {
			active++
		}
	}

	return Stats{
		QueueSize:         s.queue.Len(),
		ActiveRooms:       active,
		ConnectedSessions: len(s.sessions),
		TrackedPlayers:    s.balances.TrackedCount(),
	}
}

// sessionLocked re-resolves a session id; cross-references between rooms,
// queue and sessions are always id lookups, never cached pointers.
func (s *Server) sessionLocked(id model.SessionID) (*session, bool) {
	sess, ok := s.sessions[id]
	return sess, ok
}

// identityLocked returns the identity a session currently claims.
func (s *Server) identityLocked(id model.SessionID) (model.PlayerID, bool) {
	sess, ok := s.sessions[id]
	if !ok || sess.Identity() == "" {
		return "", false
	}
	return sess.Identity(), true
}

// sendLocked delivers a message if the session still exists.
func (s *Server) sendLocked(id model.SessionID, msg any) {
	if sess, ok := s.sessions[id]; ok {
		sess.sender.Send(msg)
	}
}
