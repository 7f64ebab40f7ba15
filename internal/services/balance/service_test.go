package balance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/uygun9544/slipperduel/internal/model"
	"github.com/uygun9544/slipperduel/internal/storage/memory"
	"github.com/uygun9544/slipperduel/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) profile(id, name string) model.PlayerProfile {
	return model.PlayerProfile{PlayerID: model.PlayerID(id), Name: name}
}

func (s *ServiceSuite) TestGetOrCreateSeedsBalance() {
	record := s.service.GetOrCreate(s.profile("p1", "Alice"))

	s.Equal(SeedBalance, record.Balance)
	s.Equal("Alice", record.Name)
	s.Zero(record.Wins)
	s.Zero(record.Losses)
}

func (s *ServiceSuite) TestGetOrCreateIsStable() {
	first := s.service.GetOrCreate(s.profile("p1", "Alice"))
	second := s.service.GetOrCreate(s.profile("p1", "Alice"))

	s.Equal(first.Balance, second.Balance)
	s.Equal(1, s.service.TrackedCount())
}

func (s *ServiceSuite) TestGetOrCreateRefreshesMetadata() {
	s.service.GetOrCreate(s.profile("p1", "Alice"))
	record := s.service.GetOrCreate(s.profile("p1", "Alicia"))

	s.Equal("Alicia", record.Name)
	s.Equal(SeedBalance, record.Balance)
}

func (s *ServiceSuite) TestTransferIsZeroSum() {
	s.service.GetOrCreate(s.profile("winner", "W"))
	s.service.GetOrCreate(s.profile("loser", "L"))

	winRec, loseRec := s.service.Transfer("winner", "loser", MatchReward)

	s.Equal(SeedBalance+MatchReward, winRec.Balance)
	s.Equal(SeedBalance-MatchReward, loseRec.Balance)
	s.Equal(1, winRec.Wins)
	s.Equal(1, loseRec.Losses)
	s.Zero(winRec.Losses)
	s.Zero(loseRec.Wins)
}

func (s *ServiceSuite) TestTransferSeedsUnknownIdentities() {
	winRec, loseRec := s.service.Transfer("w", "l", MatchReward)

	s.Equal(SeedBalance+MatchReward, winRec.Balance)
	s.Equal(SeedBalance-MatchReward, loseRec.Balance)
	s.Equal(2, s.service.TrackedCount())
}

func (s *ServiceSuite) TestMutationsMirrorToStorage() {
	s.service.GetOrCreate(s.profile("p1", "Alice"))

	s.Require().Eventually(func() bool {
		record, err := s.storage.GetProfile(s.ctx, "p1")
		return err == nil && record.Balance == SeedBalance
	}, time.Second, 10*time.Millisecond)
}

func (s *ServiceSuite) TestLoadWarmsLedgerFromStorage() {
	saved := &model.ProfileRecord{PlayerID: "p1", Name: "Alice", Balance: 1400, Wins: 5, Losses: 1}
	s.Require().NoError(s.storage.SaveProfile(s.ctx, saved))

	s.Require().NoError(s.service.Load(s.ctx))

	record, ok := s.service.Get("p1")
	s.Require().True(ok)
	s.Equal(int64(1400), record.Balance)
	s.Equal(5, record.Wins)
}

func (s *ServiceSuite) TestLoadedBalanceSurvivesRejoin() {
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.ProfileRecord{PlayerID: "p1", Balance: 700}))
	s.Require().NoError(s.service.Load(s.ctx))

	record := s.service.GetOrCreate(s.profile("p1", "Alice"))
	s.Equal(int64(700), record.Balance)
}

func (s *ServiceSuite) TestSnapshotCopiesRecords() {
	s.service.GetOrCreate(s.profile("p1", "Alice"))

	snapshot := s.service.Snapshot()
	s.Require().Len(snapshot, 1)
	snapshot[0].Balance = 0

	record, _ := s.service.Get("p1")
	s.Equal(SeedBalance, record.Balance)
}
