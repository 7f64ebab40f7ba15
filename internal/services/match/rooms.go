package match

import (
	"log/slog"

	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/protocol"
	"github.com/uygun9544/slipperduel/internal/services/balance"
)

// matchmakeLocked pairs waiting sessions first-come-first-served until
// fewer than two remain.
func (s *Server) matchmakeLocked() {
	for {
		a, b, ok := s.queue.DequeuePair(func(id model.SessionID) bool {
			_, alive := s.sessionLocked(id)
			return alive
		})
		if !ok {
			return
		}
		s.createRoomLocked(a, b)
	}
}

// createRoomLocked allocates a Pending room for the pair and notifies both
// sides with each other's public profile.
func (s *Server) createRoomLocked(a, b model.SessionID) {
	sessA, okA := s.sessionLocked(a)
	sessB, okB := s.sessionLocked(b)
	if !okA || !okB {
		return
	}

	roomID := model.RoomID(s.random.Token(roomTokenBytes))
	room := model.NewRoom(roomID, a, b)
	s.rooms[roomID] = room

	sessA.RoomID = roomID
	sessB.RoomID = roomID

	sessA.sender.Send(protocol.NewMatchFound(roomID, sessB.Profile))
	sessB.sender.Send(protocol.NewMatchFound(roomID, sessA.Profile))

	s.logger.Info("room created",
		slog.String("room_id", string(roomID)),
		slog.String("side_a", string(a)),
		slog.String("side_b", string(b)))
}

// acceptMatchLocked records one side's acceptance, broadcasts the updated
// accepted set, and activates the room once both identities accepted.
func (s *Server) acceptMatchLocked(id model.SessionID, roomID model.RoomID) {
	room, ok := s.rooms[roomID]
	if !ok || room.State != model.RoomStatePending {
		return
	}
	if _, member := room.SideOf(id); !member {
		return
	}
	identity, ok := s.identityLocked(id)
	if !ok {
		return
	}

	room.Accepted[identity] = true
	accepted := room.AcceptedIDs(s.identityLocked)

	for _, member := range room.Members {
		s.sendLocked(member, protocol.NewMatchAcceptUpdate(roomID, accepted))
	}

	if len(room.Accepted) < 2 {
		return
	}

	sessA, okA := s.sessionLocked(room.Members[model.SideA])
	sessB, okB := s.sessionLocked(room.Members[model.SideB])
	if !okA || !okB {
		return
	}

	plan := s.planner.Generate(1)
	room.Plans[1] = plan
	room.State = model.RoomStateActive

	sessA.sender.Send(protocol.NewMatchReady(roomID, sessB.Profile, plan, accepted))
	sessB.sender.Send(protocol.NewMatchReady(roomID, sessA.Profile, plan, accepted))

	s.logger.Info("room active", slog.String("room_id", string(roomID)))
}

// cancelRoomLocked cancels a pre-settlement room from either side,
// broadcasting match_cancelled and deleting it. Idempotent when the room
// is already gone.
func (s *Server) cancelRoomLocked(roomID model.RoomID) {
	room, ok := s.rooms[roomID]
	if !ok || room.State == model.RoomStateSettled {
		return
	}

	for _, member := range room.Members {
		s.sendLocked(member, protocol.NewMatchCancelled(roomID))
		s.clearRoomPointerLocked(member, roomID)
	}

	delete(s.rooms, roomID)
	s.logger.Info("room cancelled", slog.String("room_id", string(roomID)))
}

// teardownRoomLocked handles a member disconnecting: the remaining side
// learns via opponent_left and the room is deleted without settlement.
func (s *Server) teardownRoomLocked(roomID model.RoomID, leaving model.SessionID) {
	room, ok := s.rooms[roomID]
	if !ok {
		return
	}
	if room.State == model.RoomStateSettled {
		delete(s.rooms, roomID)
		return
	}

	if other, ok := room.Opponent(leaving); ok {
		s.clearRoomPointerLocked(other, roomID)
		s.sendLocked(other, protocol.NewOpponentLeft(roomID))
	}

	delete(s.rooms, roomID)
	s.logger.Info("room torn down",
		slog.String("room_id", string(roomID)),
		slog.String("left_session", string(leaving)))
}

// purgeTombstonesLocked drops settled rooms that kept the disconnecting
// session as a member; their duplicate-settlement window ends with the
// connection.
func (s *Server) purgeTombstonesLocked(id model.SessionID) {
	for roomID, room := range s.rooms {
		if room.State != model.RoomStateSettled {
			continue
		}
		if _, member := room.SideOf(id); member {
			delete(s.rooms, roomID)
		}
	}
}

// submitRoundLocked records one side's round result. When the second slot
// fills the round resolves exactly once: the next round's plan is generated
// and both sides receive round_result carrying the opponent's submission.
func (s *Server) submitRoundLocked(id model.SessionID, roomID model.RoomID, round int, outcome model.Outcome, time *int) {
	room, ok := s.rooms[roomID]
	if !ok || room.State != model.RoomStateActive {
		return
	}
	side, member := room.SideOf(id)
	if !member || !outcome.Valid() {
		return
	}

	record := room.Round(round)
	if record.Resolved {
		// Late retry after resolution; the earlier round_result stands.
		return
	}
	record.Sides[side] = &model.RoundSubmission{State: outcome, Time: time}

	if !record.Complete() {
		return
	}
	record.Resolved = true

	next := s.planner.Generate(round + 1)
	room.Plans[round+1] = next

	subA := record.Sides[model.SideA]
	subB := record.Sides[model.SideB]
	s.sendLocked(room.Members[model.SideA], protocol.NewRoundResult(roomID, round, subB, next))
	s.sendLocked(room.Members[model.SideB], protocol.NewRoundResult(roomID, round, subA, next))

	s.logger.Info("round resolved",
		slog.String("room_id", string(roomID)),
		slog.Int("round", round),
		slog.Int("verdict", int(record.Resolve())))
}

// applyResultLocked settles the match: a symmetric zero-sum transfer of
// the reward, applied at most once per room. Later calls only echo the
// caller's balance so duplicate client-side triggers never double-charge.
func (s *Server) applyResultLocked(id model.SessionID, roomID model.RoomID, winnerID model.PlayerID) {
	room, ok := s.rooms[roomID]
	if !ok {
		return
	}
	if _, member := room.SideOf(id); !member {
		return
	}

	if room.ResultApplied {
		identity, ok := s.identityLocked(id)
		if !ok {
			return
		}
		if record, ok := s.balances.Get(identity); ok {
			s.sendLocked(id, protocol.NewBalanceUpdate(record.PlayerID, record.Balance))
		}
		return
	}

	var winner, loser model.SessionID
	for _, member := range room.Members {
		identity, ok := s.identityLocked(member)
		if ok && identity == winnerID {
			winner = member
		} else {
			loser = member
		}
	}
	if winner == "" {
		return
	}
	loserID, ok := s.identityLocked(loser)
	if !ok {
		return
	}

	winRec, loseRec := s.balances.Transfer(winnerID, loserID, balance.MatchReward)

	room.ResultApplied = true
	room.State = model.RoomStateSettled

	s.sendLocked(winner, protocol.NewBalanceUpdate(winRec.PlayerID, winRec.Balance))
	s.sendLocked(loser, protocol.NewBalanceUpdate(loseRec.PlayerID, loseRec.Balance))

	for _, member := range room.Members {
		s.clearRoomPointerLocked(member, roomID)
	}

	s.logger.Info("match settled",
		slog.String("room_id", string(roomID)),
		slog.String("winner", string(winnerID)),
		slog.Int64("reward", balance.MatchReward))
}

// clearRoomPointerLocked resets a session's room pointer if it still
// points at the given room.
func (s *Server) clearRoomPointerLocked(id model.SessionID, roomID model.RoomID) {
	if sess, ok := s.sessionLocked(id); ok && sess.RoomID == roomID {
		sess.RoomID = ""
	}
}
