package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/uygun9544/slipperduel/internal/model"
)

type DecodeSuite struct {
	suite.Suite
}

func TestDecodeSuite(t *testing.T) {
	suite.Run(t, new(DecodeSuite))
}

func (s *DecodeSuite) TestDecodeJoinQueue() {
	msg, err := Decode([]byte(`{
		"type": "join_queue",
		"profile": {"playerId": "p1", "name": "Anna", "slipper": "pink"}
	}`))
	s.Require().NoError(err)
	s.Equal(TypeJoinQueue, msg.Type)
	s.Require().NotNil(msg.Profile)
	s.Equal(model.PlayerID("p1"), msg.Profile.PlayerID)
	s.Equal("Anna", msg.Profile.Name)
}

func (s *DecodeSuite) TestDecodeRoundSubmit() {
	msg, err := Decode([]byte(`{
		"type": "round_submit",
		"roomId": "room-1",
		"round": 2,
		"state": "success",
		"time": 420
	}`))
	s.Require().NoError(err)
	s.Equal(model.RoomID("room-1"), msg.RoomID)
	s.Equal(2, msg.Round)
	s.Equal(model.OutcomeSuccess, msg.State)
	s.Require().NotNil(msg.Time)
	s.Equal(420, *msg.Time)
}

func (s *DecodeSuite) TestDecodeMissWithoutTime() {
	msg, err := Decode([]byte(`{
		"type": "round_submit",
		"roomId": "room-1",
		"round": 1,
		"state": "miss"
	}`))
	s.Require().NoError(err)
	s.Nil(msg.Time)
}

func (s *DecodeSuite) TestDecodeMalformed() {
	_, err := Decode([]byte("{not json"))
	s.ErrorIs(err, ErrMalformed)
}

func (s *DecodeSuite) TestDecodeUnknownType() {
	_, err := Decode([]byte(`{"type": "teleport"}`))
	s.ErrorIs(err, ErrUnknownType)
}

func (s *DecodeSuite) TestDecodeMissingType() {
	_, err := Decode([]byte(`{}`))
	s.ErrorIs(err, ErrUnknownType)
}

func (s *DecodeSuite) TestOutboundMessagesCarryTheirTag() {
	raw, err := json.Marshal(NewBalanceUpdate("p1", 1100))
	s.Require().NoError(err)

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	s.Equal("balance_update", decoded["type"])
	s.Equal("p1", decoded["playerId"])
	s.EqualValues(1100, decoded["balance"])
}
