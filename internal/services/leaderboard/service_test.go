package leaderboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/services/balance"
	"github.com/uygun9544/slipperduel/internal/storage/memory"
	"github.com/uygun9544/slipperduel/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	balances *balance.Service
	service  *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.balances = balance.New(s.storage, testutil.NopLogger())
	s.service = New(s.balances)
}

func (s *ServiceSuite) seed(records ...*model.ProfileRecord) {
	ctx := context.Background()
	for _, record := range records {
		s.Require().NoError(s.storage.SaveProfile(ctx, record))
	}
	s.Require().NoError(s.balances.Load(ctx))
}

func (s *ServiceSuite) TestOrderByBalanceDesc() {
	s.seed(
		&model.ProfileRecord{PlayerID: "low", Name: "Low", Balance: 900},
		&model.ProfileRecord{PlayerID: "high", Name: "High", Balance: 1400},
		&model.ProfileRecord{PlayerID: "mid", Name: "Mid", Balance: 1000},
	)

	rows := s.service.Top(0)
	s.Require().Len(rows, 3)
	s.Equal(model.PlayerID("high"), rows[0].PlayerID)
	s.Equal(model.PlayerID("mid"), rows[1].PlayerID)
	s.Equal(model.PlayerID("low"), rows[2].PlayerID)
}

func (s *ServiceSuite) TestTieBreakWinsThenLossesThenName() {
	s.seed(
		&model.ProfileRecord{PlayerID: "b", Name: "Borya", Balance: 1000, Wins: 2, Losses: 2},
		&model.ProfileRecord{PlayerID: "a", Name: "Anya", Balance: 1000, Wins: 2, Losses: 2},
		&model.ProfileRecord{PlayerID: "c", Name: "Clara", Balance: 1000, Wins: 2, Losses: 1},
		&model.ProfileRecord{PlayerID: "d", Name: "Dima", Balance: 1000, Wins: 3, Losses: 5},
	)

	rows := s.service.Top(0)
	s.Require().Len(rows, 4)
	// More wins first, then fewer losses, then name collation
	s.Equal(model.PlayerID("d"), rows[0].PlayerID)
	s.Equal(model.PlayerID("c"), rows[1].PlayerID)
	s.Equal(model.PlayerID("a"), rows[2].PlayerID)
	s.Equal(model.PlayerID("b"), rows[3].PlayerID)
}

func (s *ServiceSuite) TestOrderingIsTotal() {
	s.seed(
		&model.ProfileRecord{PlayerID: "a", Name: "Anya", Balance: 1000},
		&model.ProfileRecord{PlayerID: "b", Name: "Borya", Balance: 1000},
	)

	first := s.service.Top(0)
	second := s.service.Top(0)
	s.Equal(first, second)
}

func (s *ServiceSuite) TestLimitClamping() {
	var records []*model.ProfileRecord
	for i := 0; i < 150; i++ {
		records = append(records, &model.ProfileRecord{
			PlayerID: model.PlayerID(fmt.Sprintf("p%03d", i)),
			Name:     fmt.Sprintf("Player %03d", i),
			Balance:  int64(i),
		})
	}
	s.seed(records...)

	s.Len(s.service.Top(0), DefaultLimit)
	s.Len(s.service.Top(-5), 1)
	s.Len(s.service.Top(1000), MaxLimit)
	s.Len(s.service.Top(7), 7)
}

func (s *ServiceSuite) TestRowDerivedFields() {
	s.seed(&model.ProfileRecord{PlayerID: "a", Name: "Anya", Balance: 1200, Wins: 3, Losses: 1})

	rows := s.service.Top(0)
	s.Require().Len(rows, 1)
	s.Equal(4, rows[0].Matches)
	s.InDelta(0.75, rows[0].WinRate, 1e-9)
}

func (s *ServiceSuite) TestEmptyLedger() {
	s.Empty(s.service.Top(0))
}
