package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/uygun9544/slipperduel/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Profile tests

func (s *StorageSuite) TestSaveAndGetProfile() {
	record := &model.ProfileRecord{
		PlayerID:  "player-1",
		Name:      "Alice",
		AvatarURL: "https://example.com/a.png",
		Balance:   1100,
		Wins:      2,
		Losses:    1,
	}

	err := s.storage.SaveProfile(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetProfile(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(record, retrieved)
}

func (s *StorageSuite) TestGetProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *StorageSuite) TestSaveProfileReplacesRow() {
	record := &model.ProfileRecord{PlayerID: "player-1", Name: "Alice", Balance: 1000}
	s.Require().NoError(s.storage.SaveProfile(s.ctx, record))

	record.Balance = 1100
	record.Wins = 1
	s.Require().NoError(s.storage.SaveProfile(s.ctx, record))

	retrieved, err := s.storage.GetProfile(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(int64(1100), retrieved.Balance)
	s.Equal(1, retrieved.Wins)
}

func (s *StorageSuite) TestListProfiles() {
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.ProfileRecord{PlayerID: "a", Name: "A"}))
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.ProfileRecord{PlayerID: "b", Name: "B"}))

	records, err := s.storage.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Len(records, 2)

	ids := []model.PlayerID{records[0].PlayerID, records[1].PlayerID}
	s.ElementsMatch([]model.PlayerID{"a", "b"}, ids)
}

func (s *StorageSuite) TestListProfilesSkipsDanglingIndexEntries() {
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.ProfileRecord{PlayerID: "a", Name: "A"}))

	// Simulate a row lost without its index entry
	s.mini.Del(profileKey("a"))

	records, err := s.storage.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Empty(records)
}

// Training config tests

func (s *StorageSuite) TestTrainingConfigNotFound() {
	_, err := s.storage.GetTrainingConfig(s.ctx)
	s.ErrorIs(err, model.ErrTrainingConfigNotFound)
}

func (s *StorageSuite) TestSaveAndGetTrainingConfig() {
	cfg := model.TrainingBotConfig{ReactionMinMs: 300, ReactionMaxMs: 2000, MissChance: 0.5}
	s.Require().NoError(s.storage.SaveTrainingConfig(s.ctx, cfg))

	retrieved, err := s.storage.GetTrainingConfig(s.ctx)
	s.Require().NoError(err)
	s.Equal(cfg, retrieved)
}
