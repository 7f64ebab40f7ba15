// Package protocol defines the JSON wire messages exchanged over the game
// socket. Inbound messages form a tagged union dispatched on Type; outbound
// messages are plain structs that carry their own tag.
package protocol

import (
	"encoding/json"
	"errors"

	"github.com/uygun9544/slipperduel/internal/model"
)

// MessageType tags a protocol message.
type MessageType string

// Inbound message types (client -> server)
const (
	TypeJoinQueue   MessageType = "join_queue"
	TypeSyncBalance MessageType = "sync_balance"
	TypeCancelQueue MessageType = "cancel_queue"
	TypeAcceptMatch MessageType = "accept_match"
	TypeCancelMatch MessageType = "cancel_match"
	TypeRoundSubmit MessageType = "round_submit"
	TypeMatchResult MessageType = "match_result"
)

// Outbound message types (server -> client)
const (
	TypeConnected         MessageType = "connected"
	TypeMatchFound        MessageType = "match_found"
	TypeMatchAcceptUpdate MessageType = "match_accept_update"
	TypeMatchReady        MessageType = "match_ready"
	TypeMatchCancelled    MessageType = "match_cancelled"
	TypeOpponentLeft      MessageType = "opponent_left"
	TypeRoundResult       MessageType = "round_result"
	TypeBalanceSync       MessageType = "balance_sync"
	TypeBalanceUpdate     MessageType = "balance_update"
	TypeError             MessageType = "error"
)

// Decode errors
var (
	ErrMalformed   = errors.New("malformed message")
	ErrUnknownType = errors.New("unknown message type")
)

// ClientMessage is the decoded form of any inbound message. Fields beyond
// Type are populated depending on the tag.
type ClientMessage struct {
	Type    MessageType          `json:"type"`
	Profile *model.PlayerProfile `json:"profile,omitempty"`

	RoomID model.RoomID `json:"roomId,omitempty"`

	// round_submit
	Round int           `json:"round,omitempty"`
	State model.Outcome `json:"state,omitempty"`
	Time  *int          `json:"time,omitempty"`

	// match_result
	WinnerPlayerID model.PlayerID `json:"winnerPlayerId,omitempty"`
}

// Decode parses raw bytes into a ClientMessage. It returns ErrMalformed
// for unparseable input and ErrUnknownType for tags the server does not
// handle; both keep the connection open.
func Decode(raw []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, ErrMalformed
	}

	switch msg.Type {
	case TypeJoinQueue, TypeSyncBalance, TypeCancelQueue,
		TypeAcceptMatch, TypeCancelMatch, TypeRoundSubmit, TypeMatchResult:
		return &msg, nil
	}
	return nil, ErrUnknownType
}

// Connected acknowledges a freshly registered session.
type Connected struct {
	Type MessageType `json:"type"`
}

// NewConnected builds the registration acknowledgment.
func NewConnected() Connected {
	return Connected{Type: TypeConnected}
}

// MatchFound tells a session it has been paired.
type MatchFound struct {
	Type     MessageType         `json:"type"`
	RoomID   model.RoomID        `json:"roomId"`
	Opponent model.PlayerProfile `json:"opponent"`
}

// NewMatchFound builds a match_found notification.
func NewMatchFound(roomID model.RoomID, opponent model.PlayerProfile) MatchFound {
	return MatchFound{Type: TypeMatchFound, RoomID: roomID, Opponent: opponent}
}

// MatchAcceptUpdate broadcasts the accepted-identity set after each accept.
type MatchAcceptUpdate struct {
	Type              MessageType      `json:"type"`
	RoomID            model.RoomID     `json:"roomId"`
	AcceptedPlayerIDs []model.PlayerID `json:"acceptedPlayerIds"`
}

// NewMatchAcceptUpdate builds a match_accept_update notification.
func NewMatchAcceptUpdate(roomID model.RoomID, accepted []model.PlayerID) MatchAcceptUpdate {
	return MatchAcceptUpdate{Type: TypeMatchAcceptUpdate, RoomID: roomID, AcceptedPlayerIDs: accepted}
}

// MatchReady signals that both sides accepted and carries round 1's plan.
type MatchReady struct {
	Type              MessageType         `json:"type"`
	RoomID            model.RoomID        `json:"roomId"`
	Opponent          model.PlayerProfile `json:"opponent"`
	RoundPlan         *model.RoundPlan    `json:"roundPlan"`
	AcceptedPlayerIDs []model.PlayerID    `json:"acceptedPlayerIds"`
}

// NewMatchReady builds a match_ready notification.
func NewMatchReady(roomID model.RoomID, opponent model.PlayerProfile, plan *model.RoundPlan, accepted []model.PlayerID) MatchReady {
	return MatchReady{
		Type:              TypeMatchReady,
		RoomID:            roomID,
		Opponent:          opponent,
		RoundPlan:         plan,
		AcceptedPlayerIDs: accepted,
	}
}

// MatchCancelled tells both sides the room is gone before settlement.
type MatchCancelled struct {
	Type   MessageType  `json:"type"`
	RoomID model.RoomID `json:"roomId"`
}

// NewMatchCancelled builds a match_cancelled notification.
func NewMatchCancelled(roomID model.RoomID) MatchCancelled {
	return MatchCancelled{Type: TypeMatchCancelled, RoomID: roomID}
}

// OpponentLeft tells the remaining side its opponent disconnected.
type OpponentLeft struct {
	Type   MessageType  `json:"type"`
	RoomID model.RoomID `json:"roomId"`
}

// NewOpponentLeft builds an opponent_left notification.
func NewOpponentLeft(roomID model.RoomID) OpponentLeft {
	return OpponentLeft{Type: TypeOpponentLeft, RoomID: roomID}
}

// RoundResult carries the opponent's outcome for a resolved round and the
// next round's plan.
type RoundResult struct {
	Type          MessageType      `json:"type"`
	RoomID        model.RoomID     `json:"roomId"`
	Round         int              `json:"round"`
	EnemyState    model.Outcome    `json:"enemyState"`
	EnemyTime     *int             `json:"enemyTime"`
	NextRoundPlan *model.RoundPlan `json:"nextRoundPlan"`
}

// NewRoundResult builds a round_result notification for one side.
func NewRoundResult(roomID model.RoomID, round int, enemy *model.RoundSubmission, next *model.RoundPlan) RoundResult {
	return RoundResult{
		Type:          TypeRoundResult,
		RoomID:        roomID,
		Round:         round,
		EnemyState:    enemy.State,
		EnemyTime:     enemy.Time,
		NextRoundPlan: next,
	}
}

// BalanceSync reports the current balance outside settlement (on join or
// profile sync).
type BalanceSync struct {
	Type     MessageType    `json:"type"`
	PlayerID model.PlayerID `json:"playerId"`
	Balance  int64          `json:"balance"`
}

// NewBalanceSync builds a balance_sync reply.
func NewBalanceSync(playerID model.PlayerID, balance int64) BalanceSync {
	return BalanceSync{Type: TypeBalanceSync, PlayerID: playerID, Balance: balance}
}

// BalanceUpdate reports the balance after a settlement mutation (or its
// idempotent echo).
type BalanceUpdate struct {
	Type     MessageType    `json:"type"`
	PlayerID model.PlayerID `json:"playerId"`
	Balance  int64          `json:"balance"`
}

// NewBalanceUpdate builds a balance_update notification.
func NewBalanceUpdate(playerID model.PlayerID, balance int64) BalanceUpdate {
	return BalanceUpdate{Type: TypeBalanceUpdate, PlayerID: playerID, Balance: balance}
}

// Error is sent for malformed or unknown messages; the connection stays
// open.
type Error struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// NewError builds an error reply.
func NewError(message string) Error {
	return Error{Type: TypeError, Message: message}
}
