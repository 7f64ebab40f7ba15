package model

// RoomID is an unguessable random token identifying a matched pair.
type RoomID string

// RoomState represents the lifecycle state of a room
type RoomState string

const (
	// RoomStatePending means the room was created and is waiting for
	// both sides to accept.
	RoomStatePending RoomState = "pending"
	// RoomStateActive means both sides accepted and the round loop is
	// running.
	RoomStateActive RoomState = "active"
	// RoomStateSettled is terminal: the match result was applied. The
	// room stays in the table as a tombstone so duplicate settlement
	// requests can be answered with a balance echo.
	RoomStateSettled RoomState = "settled"
)

// RoomSide distinguishes the two fixed member slots of a room. Round
// bookkeeping is keyed by side, not identity, so late profile changes
// never misattribute a result.
type RoomSide int

const (
	SideA RoomSide = 0
	SideB RoomSide = 1
)

// Other returns the opposing side.
func (s RoomSide) Other() RoomSide {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Room is the paired-match context for exactly two sessions. Member order
// is fixed at creation and used for all round bookkeeping.
type Room struct {
	ID            RoomID
	State         RoomState
	Members       [2]SessionID
	Accepted      map[PlayerID]bool
	Rounds        map[int]*RoundRecord
	Plans         map[int]*RoundPlan
	ResultApplied bool
}

// NewRoom creates a Pending room for the given pair.
func NewRoom(id RoomID, a, b SessionID) *Room {
	return &Room{
		ID:       id,
		State:    RoomStatePending,
		Members:  [2]SessionID{a, b},
		Accepted: make(map[PlayerID]bool),
		Rounds:   make(map[int]*RoundRecord),
		Plans:    make(map[int]*RoundPlan),
	}
}

// SideOf returns the side the given session occupies, false when the
// session is not a member.
func (r *Room) SideOf(id SessionID) (RoomSide, bool) {
	switch id {
	case r.Members[SideA]:
		return SideA, true
	case r.Members[SideB]:
		return SideB, true
	}
	return 0, false
}

// Opponent returns the other member's session id, false when the given
// session is not a member.
func (r *Room) Opponent(id SessionID) (SessionID, bool) {
	side, ok := r.SideOf(id)
	if !ok {
		return "", false
	}
	return r.Members[side.Other()], true
}

// AcceptedIDs returns the identities that have accepted so far, in
// member order.
func (r *Room) AcceptedIDs(identityOf func(SessionID) (PlayerID, bool)) []PlayerID {
	ids := make([]PlayerID, 0, 2)
	for _, member := range r.Members {
		identity, ok := identityOf(member)
		if ok && r.Accepted[identity] {
			ids = append(ids, identity)
		}
	}
	return ids
}

// Round returns the record for the given round, creating it if absent.
func (r *Room) Round(number int) *RoundRecord {
	rec, ok := r.Rounds[number]
	if !ok {
		rec = &RoundRecord{}
		r.Rounds[number] = rec
	}
	return rec
}
