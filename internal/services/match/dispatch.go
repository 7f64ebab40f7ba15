package match

import (
	"errors"
	"log/slog"

	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/protocol"
)

// HandleMessage decodes one inbound frame from a session and routes it.
// Malformed and unknown messages get an error reply; everything else is
// dispatched on the message tag. The switch lists every inbound type so a
// new tag cannot be added to the protocol without a branch here.
func (s *Server) HandleMessage(id model.SessionID, raw []byte) {
	msg, err := protocol.Decode(raw)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch {
		case errors.Is(err, protocol.ErrMalformed):
			s.sendLocked(id, protocol.NewError("Invalid JSON"))
		case errors.Is(err, protocol.ErrUnknownType):
			s.sendLocked(id, protocol.NewError("Unknown message type"))
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessionLocked(id); !ok {
		// Frame raced with teardown; nothing to route it to.
		return
	}

	switch msg.Type {
	case protocol.TypeJoinQueue:
		s.joinQueueLocked(id, msg.Profile)
	case protocol.TypeSyncBalance:
		s.syncBalanceLocked(id, msg.Profile)
	case protocol.TypeCancelQueue:
		s.queue.Remove(id)
	case protocol.TypeAcceptMatch:
		s.acceptMatchLocked(id, msg.RoomID)
	case protocol.TypeCancelMatch:
		s.cancelRoomLocked(msg.RoomID)
	case protocol.TypeRoundSubmit:
		s.submitRoundLocked(id, msg.RoomID, msg.Round, msg.State, msg.Time)
	case protocol.TypeMatchResult:
		s.applyResultLocked(id, msg.RoomID, msg.WinnerPlayerID)
	}
}

// joinQueueLocked updates the session profile, seeds the balance record,
// enqueues the session and attempts pairing.
func (s *Server) joinQueueLocked(id model.SessionID, profile *model.PlayerProfile) {
	sess, ok := s.sessionLocked(id)
	if !ok {
		return
	}
	if profile == nil || profile.PlayerID == "" {
		s.sendLocked(id, protocol.NewError("Profile required"))
		return
	}

	sess.Profile = *profile
	record := s.balances.GetOrCreate(*profile)
	s.sendLocked(id, protocol.NewBalanceSync(record.PlayerID, record.Balance))

	s.queue.Enqueue(id)
	s.logger.Info("session queued",
		slog.String("session_id", string(id)),
		slog.String("player_id", string(profile.PlayerID)),
		slog.Int("queue_size", s.queue.Len()))

	s.matchmakeLocked()
}

// syncBalanceLocked refreshes profile metadata and echoes the balance
// without touching the queue.
func (s *Server) syncBalanceLocked(id model.SessionID, profile *model.PlayerProfile) {
	sess, ok := s.sessionLocked(id)
	if !ok {
		return
	}
	if profile == nil || profile.PlayerID == "" {
		s.sendLocked(id, protocol.NewError("Profile required"))
		return
	}

	sess.Profile = *profile
	record := s.balances.GetOrCreate(*profile)
	s.sendLocked(id, protocol.NewBalanceSync(record.PlayerID, record.Balance))
}
