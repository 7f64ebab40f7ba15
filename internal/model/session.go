package model

// SessionID identifies one live connection. Generated on connect, never
// reused.
type SessionID string

// Session is the transient state of one connected client. Sessions are
// owned by the connection registry; rooms and the queue hold only the id
// and re-resolve it on every use.
type Session struct {
	ID      SessionID
	Profile PlayerProfile
	// RoomID is the room this session currently belongs to, empty when
	// not in a room.
	RoomID RoomID
}

// Identity returns the session's stable player identity, empty until the
// client reports a profile.
func (s *Session) Identity() PlayerID {
	return s.Profile.PlayerID
}
